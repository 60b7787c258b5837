package scenefile

import "github.com/go-gl/mathgl/mgl32"

// Built-in unit shapes, centered at the origin with counter-clockwise
// winding seen from outside.
var shapes = map[string]func() ([]mgl32.Vec3, []uint32){
	"triangle": triangleShape,
	"quad":     quadShape,
	"cube":     cubeShape,
}

// ShapeNames returns the names accepted in a mesh's shape field.
func ShapeNames() []string {
	return []string{"cube", "quad", "triangle"}
}

func triangleShape() ([]mgl32.Vec3, []uint32) {
	return []mgl32.Vec3{
		{-0.5, -0.5, 0},
		{0.5, -0.5, 0},
		{0, 0.5, 0},
	}, []uint32{0, 1, 2}
}

// quadShape lies in the XZ plane facing +Y.
func quadShape() ([]mgl32.Vec3, []uint32) {
	return []mgl32.Vec3{
		{-0.5, 0, -0.5},
		{0.5, 0, -0.5},
		{0.5, 0, 0.5},
		{-0.5, 0, 0.5},
	}, []uint32{0, 2, 1, 0, 3, 2}
}

func cubeShape() ([]mgl32.Vec3, []uint32) {
	verts := []mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // -Z
		4, 5, 6, 4, 6, 7, // +Z
		0, 1, 5, 0, 5, 4, // -Y
		3, 6, 2, 3, 7, 6, // +Y
		0, 4, 7, 0, 7, 3, // -X
		1, 2, 6, 1, 6, 5, // +X
	}
	return verts, indices
}
