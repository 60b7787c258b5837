// Package scene collects per-frame scene sources and packs them into
// flat primitive buffers for the ray-tracing shader.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rtscene/internal/geometry"
	"github.com/Faultbox/rtscene/pkg/primitive"
)

// MeshSnapshot is an immutable capture of a mesh source for one pack.
type MeshSnapshot struct {
	Vertices      []mgl32.Vec3
	Indices       []uint32
	World         mgl32.Mat4
	Material      primitive.Material
	FlipNormals   bool
	BoundsExtents mgl32.Vec3
}

// SphereSnapshot is an immutable capture of a sphere source for one pack.
type SphereSnapshot struct {
	Position mgl32.Vec3
	ScaleX   float32
	Material primitive.Material
}

// MeshSource supplies mesh geometry. MeshSnapshot is called exactly once per pack.
type MeshSource interface {
	MeshSnapshot() MeshSnapshot
}

// SphereSource supplies a sphere. SphereSnapshot is called exactly once per pack.
type SphereSource interface {
	SphereSnapshot() SphereSnapshot
}

// Refresher is implemented by sources that cache host state and must update
// it before being read.
type Refresher interface {
	UpdateProperties()
}

// Transform places an object in world space.
// Rotation is Euler angles in degrees, applied Z, then X, then Y.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns the local-to-world matrix (translate * rotate * scale).
func (t Transform) Matrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z())))
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// StaticMesh is a mesh source whose state only changes when its fields do.
type StaticMesh struct {
	Name        string
	Vertices    []mgl32.Vec3
	Indices     []uint32
	Transform   Transform
	Material    primitive.Material
	FlipNormals bool
}

// MeshSnapshot implements MeshSource.
func (m *StaticMesh) MeshSnapshot() MeshSnapshot {
	return MeshSnapshot{
		Vertices:      m.Vertices,
		Indices:       m.Indices,
		World:         m.Transform.Matrix(),
		Material:      m.Material,
		FlipNormals:   m.FlipNormals,
		BoundsExtents: geometry.LocalBounds(m.Vertices).Extents,
	}
}

// StaticSphere is a sphere source placed by a transform.
// Only Scale.X contributes to the radius.
type StaticSphere struct {
	Name      string
	Transform Transform
	Material  primitive.Material
}

// SphereSnapshot implements SphereSource.
func (s *StaticSphere) SphereSnapshot() SphereSnapshot {
	return SphereSnapshot{
		Position: s.Transform.Position,
		ScaleX:   s.Transform.Scale.X(),
		Material: s.Material,
	}
}
