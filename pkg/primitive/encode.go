package primitive

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SphereWords flattens spheres into a contiguous word buffer.
// Returns nil for an empty slice.
func SphereWords(spheres []Sphere) []float32 {
	if len(spheres) == 0 {
		return nil
	}
	words := make([]float32, 0, len(spheres)*SphereStride)
	for _, s := range spheres {
		words = s.AppendWords(words)
	}
	return words
}

// TriangleWords flattens triangles into a contiguous word buffer.
// Returns nil for an empty slice.
func TriangleWords(triangles []Triangle) []float32 {
	if len(triangles) == 0 {
		return nil
	}
	words := make([]float32, 0, len(triangles)*TriangleStride)
	for _, t := range triangles {
		words = t.AppendWords(words)
	}
	return words
}

// WriteSpheres writes spheres as little-endian float32 words.
func WriteSpheres(w io.Writer, spheres []Sphere) error {
	if len(spheres) == 0 {
		return nil
	}
	if err := binary.Write(w, binary.LittleEndian, SphereWords(spheres)); err != nil {
		return fmt.Errorf("writing %d spheres: %w", len(spheres), err)
	}
	return nil
}

// WriteTriangles writes triangles as little-endian float32 words.
func WriteTriangles(w io.Writer, triangles []Triangle) error {
	if len(triangles) == 0 {
		return nil
	}
	if err := binary.Write(w, binary.LittleEndian, TriangleWords(triangles)); err != nil {
		return fmt.Errorf("writing %d triangles: %w", len(triangles), err)
	}
	return nil
}
