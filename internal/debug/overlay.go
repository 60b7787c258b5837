// Package debug builds read-only visual overlays of packed scene records.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rtscene/internal/geometry"
	"github.com/Faultbox/rtscene/pkg/primitive"
)

// Overlay colors.
var (
	WireColor   = mgl32.Vec3{1, 0, 0}
	NormalColor = mgl32.Vec3{1, 1, 0}
	PointColor  = mgl32.Vec3{1, 0, 0}
	BoundsColor = mgl32.Vec3{0, 0, 1}
)

// LineVertex is one endpoint of a colored debug line.
type LineVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Overlay holds line-list vertices (pairs of endpoints).
type Overlay struct {
	Lines []LineVertex
}

// LineCount returns the number of line segments.
func (o *Overlay) LineCount() int {
	return len(o.Lines) / 2
}

// Options selects which overlay parts are generated.
type Options struct {
	Wireframe bool
	Normals   bool
	Points    bool
	// PointSize is the half length of the cross drawn at each vertex.
	PointSize float32
}

// DefaultOptions enables every part with 0.05 point markers.
func DefaultOptions() Options {
	return Options{Wireframe: true, Normals: true, Points: true, PointSize: 0.05}
}

func (o *Overlay) line(a, b, color mgl32.Vec3) {
	o.Lines = append(o.Lines, LineVertex{a, color}, LineVertex{b, color})
}

// AddTriangles appends edges, vertex markers and normal rays for tris.
// Normal rays start at each vertex and use the unnormalized normal as-is,
// so their length shows the triangle's area.
func (o *Overlay) AddTriangles(tris []primitive.Triangle, opts Options) {
	for _, tri := range tris {
		corners := [3]mgl32.Vec3{tri.A, tri.B, tri.C}
		if opts.Wireframe {
			o.line(tri.A, tri.B, WireColor)
			o.line(tri.B, tri.C, WireColor)
			o.line(tri.C, tri.A, WireColor)
		}
		if opts.Points {
			for _, c := range corners {
				o.cross(c, opts.PointSize)
			}
		}
		if opts.Normals {
			for _, c := range corners {
				o.line(c, c.Add(tri.Normal), NormalColor)
			}
		}
	}
}

func (o *Overlay) cross(p mgl32.Vec3, size float32) {
	for axis := 0; axis < 3; axis++ {
		var d mgl32.Vec3
		d[axis] = size
		o.line(p.Sub(d), p.Add(d), PointColor)
	}
}

// AddBounds appends a 12-edge wireframe box of half extents b around center.
func (o *Overlay) AddBounds(center mgl32.Vec3, b geometry.MeshBounds) {
	minP := center.Sub(b.Extents)
	maxP := center.Add(b.Extents)
	v := BoxWireframe(minP, maxP)
	for i := 0; i < len(v); i += 2 {
		o.line(v[i], v[i+1], BoundsColor)
	}
}

// BoxWireframe returns 24 endpoints (12 edges) of the box between minP and maxP.
func BoxWireframe(minP, maxP mgl32.Vec3) []mgl32.Vec3 {
	x0, y0, z0 := minP.Elem()
	x1, y1, z1 := maxP.Elem()
	return []mgl32.Vec3{
		// Bottom face
		{x0, y0, z0}, {x1, y0, z0},
		{x1, y0, z0}, {x1, y0, z1},
		{x1, y0, z1}, {x0, y0, z1},
		{x0, y0, z1}, {x0, y0, z0},
		// Top face
		{x0, y1, z0}, {x1, y1, z0},
		{x1, y1, z0}, {x1, y1, z1},
		{x1, y1, z1}, {x0, y1, z1},
		{x0, y1, z1}, {x0, y1, z0},
		// Vertical edges
		{x0, y0, z0}, {x0, y1, z0},
		{x1, y0, z0}, {x1, y1, z0},
		{x1, y0, z1}, {x1, y1, z1},
		{x0, y0, z1}, {x0, y1, z1},
	}
}

// Floats flattens the overlay into [x, y, z, r, g, b] per vertex.
func (o *Overlay) Floats() []float32 {
	out := make([]float32, 0, len(o.Lines)*6)
	for _, v := range o.Lines {
		out = append(out, v.Position[:]...)
		out = append(out, v.Color[:]...)
	}
	return out
}
