package gpu

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/rtscene/internal/logger"
	"github.com/Faultbox/rtscene/pkg/primitive"
)

// Texture units used for the record buffers.
const (
	SphereTextureUnit   = 1
	TriangleTextureUnit = 2
)

// ErrBufferTooLarge is returned when a category exceeds GL_MAX_TEXTURE_BUFFER_SIZE.
var ErrBufferTooLarge = errors.New("record buffer exceeds texture buffer limit")

// recordBuffer is one buffer object plus the texture that exposes it.
type recordBuffer struct {
	name     string
	stride   int
	unit     uint32
	buffer   uint32
	texture  uint32
	count    int
	countLoc int32
	dataLoc  int32
}

func newRecordBuffer(program uint32, name, countName string, stride int, unit uint32) *recordBuffer {
	rb := &recordBuffer{
		name:     name,
		stride:   stride,
		unit:     unit,
		countLoc: uniform(program, countName),
		dataLoc:  uniform(program, name),
	}
	gl.GenBuffers(1, &rb.buffer)
	gl.GenTextures(1, &rb.texture)

	gl.BindBuffer(gl.TEXTURE_BUFFER, rb.buffer)
	gl.BufferData(gl.TEXTURE_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	gl.BindTexture(gl.TEXTURE_BUFFER, rb.texture)
	gl.TexBuffer(gl.TEXTURE_BUFFER, gl.R32F, rb.buffer)
	gl.BindTexture(gl.TEXTURE_BUFFER, 0)
	gl.BindBuffer(gl.TEXTURE_BUFFER, 0)
	return rb
}

func (rb *recordBuffer) upload(data []float32, count int, maxTexels int32) error {
	if err := checkUpload(rb.name, len(data), count, rb.stride, maxTexels); err != nil {
		return err
	}
	gl.BindBuffer(gl.TEXTURE_BUFFER, rb.buffer)
	if len(data) == 0 {
		gl.BufferData(gl.TEXTURE_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.TEXTURE_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	}
	gl.BindBuffer(gl.TEXTURE_BUFFER, 0)
	rb.count = count
	return nil
}

// checkUpload verifies words matches count records and fits in one R32F
// texture buffer. maxTexels <= 0 means unknown.
func checkUpload(name string, words, count, stride int, maxTexels int32) error {
	if words != count*stride {
		return fmt.Errorf("%s: %d words for %d records of stride %d", name, words, count, stride)
	}
	if maxTexels > 0 && words > int(maxTexels) {
		return fmt.Errorf("%w: %s needs %d texels, limit %d", ErrBufferTooLarge, name, words, maxTexels)
	}
	return nil
}

func (rb *recordBuffer) bind() {
	gl.ActiveTexture(gl.TEXTURE0 + rb.unit)
	gl.BindTexture(gl.TEXTURE_BUFFER, rb.texture)
	if rb.dataLoc >= 0 {
		gl.Uniform1i(rb.dataLoc, int32(rb.unit))
	}
	if rb.countLoc >= 0 {
		gl.Uniform1i(rb.countLoc, int32(rb.count))
	}
}

func (rb *recordBuffer) destroy() {
	gl.DeleteTextures(1, &rb.texture)
	gl.DeleteBuffers(1, &rb.buffer)
}

// TextureBufferSink binds sphere and triangle records to a ray-tracing program.
//
// Counts change only when a category is uploaded or Clear is called, so an
// empty frame keeps showing the previous geometry.
type TextureBufferSink struct {
	program   uint32
	spheres   *recordBuffer
	triangles *recordBuffer
	maxTexels int32
}

// NewTextureBufferSink allocates buffers for program. The program must declare
//
//	uniform samplerBuffer spheres;   uniform int numSpheres;
//	uniform samplerBuffer triangles; uniform int numTriangles;
func NewTextureBufferSink(program uint32) *TextureBufferSink {
	s := &TextureBufferSink{
		program:   program,
		spheres:   newRecordBuffer(program, "spheres", "numSpheres", primitive.SphereStride, SphereTextureUnit),
		triangles: newRecordBuffer(program, "triangles", "numTriangles", primitive.TriangleStride, TriangleTextureUnit),
	}
	gl.GetIntegerv(gl.MAX_TEXTURE_BUFFER_SIZE, &s.maxTexels)
	logger.Debug("texture buffer sink created", zap.Int32("max_texels", s.maxTexels))
	return s
}

// UploadSpheres implements scene.BufferSink.
func (s *TextureBufferSink) UploadSpheres(spheres []primitive.Sphere) error {
	return s.spheres.upload(primitive.SphereWords(spheres), len(spheres), s.maxTexels)
}

// UploadTriangles implements scene.BufferSink.
func (s *TextureBufferSink) UploadTriangles(triangles []primitive.Triangle) error {
	return s.triangles.upload(primitive.TriangleWords(triangles), len(triangles), s.maxTexels)
}

// Clear implements scene.BufferSink.
func (s *TextureBufferSink) Clear() error {
	if err := s.spheres.upload(nil, 0, s.maxTexels); err != nil {
		return err
	}
	return s.triangles.upload(nil, 0, s.maxTexels)
}

// Counts returns the currently bound record counts.
func (s *TextureBufferSink) Counts() (spheres, triangles int) {
	return s.spheres.count, s.triangles.count
}

// Bind activates the program and binds both record textures and counts.
func (s *TextureBufferSink) Bind() {
	gl.UseProgram(s.program)
	s.spheres.bind()
	s.triangles.bind()
	gl.ActiveTexture(gl.TEXTURE0)
}

// Destroy releases the GL objects.
func (s *TextureBufferSink) Destroy() {
	s.spheres.destroy()
	s.triangles.destroy()
}
