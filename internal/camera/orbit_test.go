package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw float32
		want       mgl32.Vec3
	}{
		{"front", 0, 0, mgl32.Vec3{0, 1, 5}},
		{"side", 0, 90, mgl32.Vec3{5, 1, 0}},
		{"above", 90, 0, mgl32.Vec3{0, 6, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera(mgl32.Vec3{0, 1, 0}, 5, tt.pitch, tt.yaw)
			if got := c.Position(); !near(got, tt.want) {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalToWorld(t *testing.T) {
	tests := []struct {
		name    string
		yaw     float32
		forward mgl32.Vec3
		right   mgl32.Vec3
	}{
		{"yaw 0", 0, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{1, 0, 0}},
		{"yaw 90", 90, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera(mgl32.Vec3{}, 5, 0, tt.yaw)
			m := c.LocalToWorld()

			if got := mgl32.TransformCoordinate(mgl32.Vec3{}, m); !near(got, c.Position()) {
				t.Errorf("origin = %v, want camera position %v", got, c.Position())
			}
			if got := mgl32.TransformNormal(mgl32.Vec3{0, 0, 1}, m); !near(got, tt.forward) {
				t.Errorf("forward = %v, want %v", got, tt.forward)
			}
			if got := mgl32.TransformNormal(mgl32.Vec3{1, 0, 0}, m); !near(got, tt.right) {
				t.Errorf("right = %v, want %v", got, tt.right)
			}
			if got := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, m); !near(got, mgl32.Vec3{0, 1, 0}) {
				t.Errorf("up = %v, want +Y", got)
			}
		})
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{}, 5, 0, 0)
	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want MinDistance %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want MaxDistance %v", c.Distance, c.MaxDistance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{}, 5, 0, 0)
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want MaxPitch %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want MinPitch %v", c.Pitch, c.MinPitch)
	}
}

func TestHandleMovementFollowsView(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{}, 100, 0, 0)
	c.HandleMovement(1, 0, 0)
	if got := c.Target; !near(got, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Target after forward = %v, want (0,0,-1)", got)
	}
	c.HandleMovement(0, 1, 0)
	if got := c.Target; !near(got, mgl32.Vec3{1, 0, -1}) {
		t.Errorf("Target after right = %v, want (1,0,-1)", got)
	}
}
