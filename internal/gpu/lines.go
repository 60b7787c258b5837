package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rtscene/internal/debug"
	"github.com/Faultbox/rtscene/internal/gpu/shaders"
)

// LineRenderer draws debug overlays as colored GL_LINES on top of the frame.
type LineRenderer struct {
	program     uint32
	vao         uint32
	vbo         uint32
	locViewProj int32
}

// NewLineRenderer compiles the line shaders and allocates a streaming buffer.
func NewLineRenderer() (*LineRenderer, error) {
	program, err := CompileProgram(shaders.LinesVertexShader, shaders.LinesFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}
	lr := &LineRenderer{
		program:     program,
		locViewProj: uniform(program, "uViewProj"),
	}

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)

	// Position (location 0), color (location 1)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return lr, nil
}

// Draw uploads the overlay and draws it with viewProj.
func (lr *LineRenderer) Draw(viewProj mgl32.Mat4, o *debug.Overlay) {
	if o == nil || len(o.Lines) == 0 {
		return
	}
	data := o.Floats()

	gl.UseProgram(lr.program)
	gl.UniformMatrix4fv(lr.locViewProj, 1, false, &viewProj[0])

	gl.BindVertexArray(lr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(o.Lines)))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Destroy releases GL resources.
func (lr *LineRenderer) Destroy() {
	gl.DeleteBuffers(1, &lr.vbo)
	gl.DeleteVertexArrays(1, &lr.vao)
	gl.DeleteProgram(lr.program)
}
