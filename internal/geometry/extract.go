// Package geometry converts mesh instances into world-space triangle records.
package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/rtscene/internal/logger"
	"github.com/Faultbox/rtscene/pkg/primitive"
)

// ErrMalformedMesh is returned when index data does not describe whole
// triangles over the vertex array.
var ErrMalformedMesh = errors.New("malformed mesh")

// Extract builds one world-space triangle per index triple.
//
// Each vertex is point-transformed by world. With flipNormals set, the first
// and third vertices swap roles, which reverses winding and negates the normal.
// The normal is cross(b-a, c-a) and is not normalized.
//
// A mesh with no indices yields an empty, non-nil slice.
func Extract(vertices []mgl32.Vec3, indices []uint32, world mgl32.Mat4, mat primitive.Material, flipNormals bool) ([]primitive.Triangle, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: index count %d is not a multiple of 3", ErrMalformedMesh, len(indices))
	}

	n := uint32(len(vertices))
	for i, idx := range indices {
		if idx >= n {
			return nil, fmt.Errorf("%w: index %d at position %d out of range (%d vertices)", ErrMalformedMesh, idx, i, n)
		}
	}

	triangles := make([]primitive.Triangle, 0, len(indices)/3)
	degenerate := 0

	for i := 0; i < len(indices); i += 3 {
		a := mgl32.TransformCoordinate(vertices[indices[i]], world)
		b := mgl32.TransformCoordinate(vertices[indices[i+1]], world)
		c := mgl32.TransformCoordinate(vertices[indices[i+2]], world)

		if flipNormals {
			// Re-derive from the local third vertex rather than the swapped value.
			c = a
			a = mgl32.TransformCoordinate(vertices[indices[i+2]], world)
		}

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal == (mgl32.Vec3{}) {
			degenerate++
		}

		triangles = append(triangles, primitive.Triangle{
			A:        a,
			B:        b,
			C:        c,
			Normal:   normal,
			Material: mat,
		})
	}

	if degenerate > 0 {
		logger.Debug("degenerate triangles extracted",
			zap.Int("count", degenerate),
			zap.Int("total", len(triangles)),
		)
	}

	return triangles, nil
}

// MeshBounds holds axis-aligned half extents of a mesh in local space.
type MeshBounds struct {
	Extents mgl32.Vec3
}

// Size returns the full edge lengths of the box.
func (b MeshBounds) Size() mgl32.Vec3 {
	return b.Extents.Mul(2)
}

// LocalBounds returns the half extents of the box enclosing vertices.
// Returns zero bounds for an empty vertex slice.
func LocalBounds(vertices []mgl32.Vec3) MeshBounds {
	if len(vertices) == 0 {
		return MeshBounds{}
	}

	minV := vertices[0]
	maxV := vertices[0]
	for _, v := range vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < minV[axis] {
				minV[axis] = v[axis]
			}
			if v[axis] > maxV[axis] {
				maxV[axis] = v[axis]
			}
		}
	}

	return MeshBounds{Extents: maxV.Sub(minV).Mul(0.5)}
}
