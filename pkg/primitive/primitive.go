// Package primitive defines the fixed-layout sphere and triangle records
// consumed by the ray-tracing shader.
//
// Records are tightly packed float32 words, read by the shader in this order:
//
//	Material { vec4 color; vec4 emissionColor; float emissionStrength; }   //  9 words
//	Sphere   { vec3 position; float radius; Material material; }           // 13 words
//	Triangle { vec3 a, b, c; vec3 normal; Material material; }             // 21 words
//
// Any change here must be made in internal/gpu/shaders/raytrace.frag as well.
package primitive

import "github.com/go-gl/mathgl/mgl32"

// Record strides in float32 words.
const (
	MaterialStride = 9
	SphereStride   = 13
	TriangleStride = 21
)

// Record strides in bytes.
const (
	SphereSize   = SphereStride * 4
	TriangleSize = TriangleStride * 4
)

// Material holds the surface properties shared by every primitive.
type Material struct {
	Color            mgl32.Vec4
	EmissionColor    mgl32.Vec4
	EmissionStrength float32
}

// NewMaterial returns a material with the given colors and emission strength.
func NewMaterial(color, emissionColor mgl32.Vec4, emissionStrength float32) Material {
	return Material{
		Color:            color,
		EmissionColor:    emissionColor,
		EmissionStrength: emissionStrength,
	}
}

// IsEmissive reports whether the material contributes light.
func (m Material) IsEmissive() bool {
	return m.EmissionStrength > 0 && (m.EmissionColor[0] > 0 || m.EmissionColor[1] > 0 || m.EmissionColor[2] > 0)
}

// AppendWords appends the material's 9 words in layout order.
func (m Material) AppendWords(dst []float32) []float32 {
	dst = append(dst, m.Color[:]...)
	dst = append(dst, m.EmissionColor[:]...)
	return append(dst, m.EmissionStrength)
}

// Sphere is a world-space sphere record.
type Sphere struct {
	Position mgl32.Vec3
	Radius   float32
	Material Material
}

// AppendWords appends the sphere's 13 words in layout order.
func (s Sphere) AppendWords(dst []float32) []float32 {
	dst = append(dst, s.Position[:]...)
	dst = append(dst, s.Radius)
	return s.Material.AppendWords(dst)
}

// Triangle is a world-space triangle record.
//
// Normal is cross(B-A, C-A), unnormalized. Its magnitude is twice the
// triangle's area.
type Triangle struct {
	A, B, C  mgl32.Vec3
	Normal   mgl32.Vec3
	Material Material
}

// AppendWords appends the triangle's 21 words in layout order.
func (t Triangle) AppendWords(dst []float32) []float32 {
	dst = append(dst, t.A[:]...)
	dst = append(dst, t.B[:]...)
	dst = append(dst, t.C[:]...)
	dst = append(dst, t.Normal[:]...)
	return t.Material.AppendWords(dst)
}

// Area returns the triangle's area, derived from the unnormalized normal.
func (t Triangle) Area() float32 {
	return t.Normal.Len() / 2
}
