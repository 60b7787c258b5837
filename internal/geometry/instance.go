package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rtscene/pkg/primitive"
)

// MeshData is the local-space geometry of a mesh.
type MeshData struct {
	Vertices []mgl32.Vec3
	Indices  []uint32
}

// TriangleCount returns the number of index triples.
func (m MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// MeshInstance caches the extracted triangles of one placed mesh.
// Each Refresh discards the previous triangles and rebuilds them.
type MeshInstance struct {
	Mesh        MeshData
	Material    primitive.Material
	FlipNormals bool

	triangles []primitive.Triangle
	bounds    MeshBounds
}

// Refresh re-extracts the instance under world. On error the previously
// extracted triangles are kept.
func (mi *MeshInstance) Refresh(world mgl32.Mat4) error {
	tris, err := Extract(mi.Mesh.Vertices, mi.Mesh.Indices, world, mi.Material, mi.FlipNormals)
	if err != nil {
		return err
	}
	mi.triangles = tris
	mi.bounds = LocalBounds(mi.Mesh.Vertices)
	return nil
}

// Triangles returns the triangles from the last successful Refresh.
func (mi *MeshInstance) Triangles() []primitive.Triangle {
	return mi.triangles
}

// Bounds returns the local bounds from the last successful Refresh.
func (mi *MeshInstance) Bounds() MeshBounds {
	return mi.bounds
}
