package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rtscene/internal/geometry"
	"github.com/Faultbox/rtscene/internal/logger"
	"github.com/Faultbox/rtscene/pkg/primitive"
)

// PackedScene is the per-frame snapshot of every primitive, in source order.
type PackedScene struct {
	Spheres   []primitive.Sphere
	Triangles []primitive.Triangle
}

// SphereCount returns the number of sphere records.
func (p *PackedScene) SphereCount() int {
	return len(p.Spheres)
}

// TriangleCount returns the number of triangle records.
func (p *PackedScene) TriangleCount() int {
	return len(p.Triangles)
}

// Stats summarizes a packed scene.
type Stats struct {
	Spheres       int
	Triangles     int
	SphereBytes   int
	TriangleBytes int
}

// Stats returns record counts and serialized sizes.
func (p *PackedScene) Stats() Stats {
	return Stats{
		Spheres:       len(p.Spheres),
		Triangles:     len(p.Triangles),
		SphereBytes:   len(p.Spheres) * primitive.SphereSize,
		TriangleBytes: len(p.Triangles) * primitive.TriangleSize,
	}
}

// Packer builds a PackedScene from sources each frame and remembers the
// last one that packed successfully.
//
// A Packer is not safe for concurrent use; it runs on the frame-update thread.
type Packer struct {
	last   *PackedScene
	frames uint64
	log    *zap.Logger
}

// NewPacker creates a new packer.
func NewPacker() *Packer {
	return &Packer{log: logger.Named("packer")}
}

// Pack snapshots every source and converts it into primitive records.
//
// Spheres take their radius from half the X scale. Mesh triangles are
// appended in source order. Any malformed mesh aborts the whole call and
// the previously packed scene is kept.
func (p *Packer) Pack(spheres []SphereSource, meshes []MeshSource) (*PackedScene, error) {
	packed := &PackedScene{}

	if len(spheres) > 0 {
		packed.Spheres = make([]primitive.Sphere, 0, len(spheres))
	}
	for _, src := range spheres {
		refresh(src)
		snap := src.SphereSnapshot()
		packed.Spheres = append(packed.Spheres, primitive.Sphere{
			Position: snap.Position,
			Radius:   snap.ScaleX / 2,
			Material: snap.Material,
		})
	}

	for i, src := range meshes {
		refresh(src)
		snap := src.MeshSnapshot()
		tris, err := geometry.Extract(snap.Vertices, snap.Indices, snap.World, snap.Material, snap.FlipNormals)
		if err != nil {
			p.log.Warn("pack aborted", zap.Int("mesh", i), zap.Error(err))
			return nil, fmt.Errorf("mesh source %d: %w", i, err)
		}
		packed.Triangles = append(packed.Triangles, tris...)
	}

	p.last = packed
	p.frames++

	p.log.Debug("scene packed",
		zap.Uint64("frame", p.frames),
		zap.Int("spheres", packed.SphereCount()),
		zap.Int("triangles", packed.TriangleCount()),
	)

	return packed, nil
}

// Last returns the most recent successfully packed scene, or nil.
func (p *Packer) Last() *PackedScene {
	return p.last
}

// Frames returns how many packs have succeeded.
func (p *Packer) Frames() uint64 {
	return p.frames
}

func refresh(src any) {
	if r, ok := src.(Refresher); ok {
		r.UpdateProperties()
	}
}
