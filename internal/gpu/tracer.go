package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/rtscene/internal/gpu/shaders"
)

// Tracer owns the ray-tracing program, its record buffers and the
// attribute-less vertex array used for the full-screen pass.
type Tracer struct {
	program  uint32
	vao      uint32
	uniforms frameUniforms
	sink     *TextureBufferSink
}

// NewTracer compiles the embedded ray-tracing shaders.
func NewTracer() (*Tracer, error) {
	program, err := CompileProgram(shaders.RayTraceVertexShader, shaders.RayTraceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ray trace program: %w", err)
	}

	t := &Tracer{
		program:  program,
		uniforms: lookupFrameUniforms(program),
		sink:     NewTextureBufferSink(program),
	}
	// Core profile refuses draws without a bound VAO, even with no attributes.
	gl.GenVertexArrays(1, &t.vao)
	return t, nil
}

// Sink returns the buffer sink scenes are published to.
func (t *Tracer) Sink() *TextureBufferSink {
	return t.sink
}

// Draw renders one frame into the current framebuffer.
func (t *Tracer) Draw(p FrameParams) {
	t.sink.Bind()
	t.uniforms.set(p)

	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Destroy releases GL resources.
func (t *Tracer) Destroy() {
	t.sink.Destroy()
	gl.DeleteVertexArrays(1, &t.vao)
	gl.DeleteProgram(t.program)
}
