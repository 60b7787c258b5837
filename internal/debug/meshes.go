package debug

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/rtscene/internal/geometry"
	"github.com/Faultbox/rtscene/internal/scene"
)

// MeshOverlay caches one MeshInstance per scene mesh so the overlay can be
// rebuilt without re-reading the scene file.
type MeshOverlay struct {
	meshes    []*scene.StaticMesh
	instances []geometry.MeshInstance
}

// NewMeshOverlay prepares instances for meshes.
func NewMeshOverlay(meshes []*scene.StaticMesh) *MeshOverlay {
	mo := &MeshOverlay{
		meshes:    meshes,
		instances: make([]geometry.MeshInstance, len(meshes)),
	}
	for i, m := range meshes {
		mo.instances[i] = geometry.MeshInstance{
			Mesh:        geometry.MeshData{Vertices: m.Vertices, Indices: m.Indices},
			Material:    m.Material,
			FlipNormals: m.FlipNormals,
		}
	}
	return mo
}

// Build refreshes every instance from its mesh's current transform and
// returns the combined overlay. Malformed meshes are reported together but
// the others are still drawn, each bad one with its previous triangles if any.
func (mo *MeshOverlay) Build(opts Options) (*Overlay, error) {
	o := &Overlay{}
	var errs error
	for i, m := range mo.meshes {
		mi := &mo.instances[i]
		if err := mi.Refresh(m.Transform.Matrix()); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("mesh %q: %w", m.Name, err))
		}
		o.AddTriangles(mi.Triangles(), opts)
		o.AddBounds(m.Transform.Position, mi.Bounds())
	}
	return o, errs
}
