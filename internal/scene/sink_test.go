package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rtscene/pkg/primitive"
)

func TestPublishUploadsNonEmpty(t *testing.T) {
	sink := &MemorySink{}
	packed := &PackedScene{
		Spheres:   []primitive.Sphere{{Radius: 1}},
		Triangles: []primitive.Triangle{{}, {}},
	}

	if err := Publish(sink, packed); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if sink.SphereCount != 1 || len(sink.SphereWords) != primitive.SphereStride {
		t.Errorf("spheres = %d (%d words), want 1 (%d words)", sink.SphereCount, len(sink.SphereWords), primitive.SphereStride)
	}
	if sink.TriangleCount != 2 || len(sink.TriangleWords) != 2*primitive.TriangleStride {
		t.Errorf("triangles = %d (%d words), want 2 (%d words)", sink.TriangleCount, len(sink.TriangleWords), 2*primitive.TriangleStride)
	}
}

func TestPublishEmptyLeavesPreviousBinding(t *testing.T) {
	sink := &MemorySink{}
	p := NewPacker()

	first, err := p.Pack(
		[]SphereSource{&StaticSphere{Transform: IdentityTransform()}},
		[]MeshSource{quadMesh()},
	)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if err := Publish(sink, first); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	// Spheres removed, meshes kept.
	second, err := p.Pack(nil, []MeshSource{triangleMesh(mgl32.Vec3{})})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if second.SphereCount() != 0 {
		t.Fatalf("SphereCount() = %d, want 0", second.SphereCount())
	}
	if err := Publish(sink, second); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if sink.SphereCount != 1 {
		t.Errorf("sink sphere count = %d, want stale 1", sink.SphereCount)
	}
	if sink.TriangleCount != 1 {
		t.Errorf("sink triangle count = %d, want 1", sink.TriangleCount)
	}

	if err := sink.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if sink.SphereCount != 0 || sink.TriangleCount != 0 || sink.SphereWords != nil {
		t.Errorf("Clear() left bindings: %+v", sink)
	}
}

func TestPublishNil(t *testing.T) {
	sink := &MemorySink{}
	if err := Publish(sink, nil); err != nil {
		t.Fatalf("Publish(nil) error = %v", err)
	}
	if sink.Uploads != 0 {
		t.Errorf("Uploads = %d, want 0", sink.Uploads)
	}
}

type failingSink struct{ MemorySink }

var errUpload = errors.New("upload failed")

func (f *failingSink) UploadTriangles([]primitive.Triangle) error { return errUpload }

func TestPublishPropagatesError(t *testing.T) {
	sink := &failingSink{}
	err := Publish(sink, &PackedScene{Triangles: []primitive.Triangle{{}}})
	if !errors.Is(err, errUpload) {
		t.Errorf("Publish() error = %v, want %v", err, errUpload)
	}
}

func TestSync(t *testing.T) {
	full := &PackedScene{
		Spheres:   []primitive.Sphere{{Radius: 1}},
		Triangles: []primitive.Triangle{{}},
	}
	spheresOnly := &PackedScene{Spheres: []primitive.Sphere{{Radius: 2}}}

	tests := []struct {
		name          string
		clearStale    bool
		wantTriangles int
	}{
		{"keep stale", false, 1},
		{"clear stale", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &MemorySink{}
			if err := Sync(sink, full, tt.clearStale); err != nil {
				t.Fatalf("Sync() error = %v", err)
			}
			if err := Sync(sink, spheresOnly, tt.clearStale); err != nil {
				t.Fatalf("Sync() error = %v", err)
			}
			if sink.TriangleCount != tt.wantTriangles {
				t.Errorf("TriangleCount = %d, want %d", sink.TriangleCount, tt.wantTriangles)
			}
			if sink.SphereCount != 1 || sink.SphereWords[3] != 2 {
				t.Errorf("spheres = %d radius %v, want 1 radius 2", sink.SphereCount, sink.SphereWords)
			}
		})
	}
}

func TestSyncNil(t *testing.T) {
	sink := &MemorySink{SphereCount: 4}
	if err := Sync(sink, nil, true); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if sink.SphereCount != 4 {
		t.Errorf("SphereCount = %d, want 4", sink.SphereCount)
	}
}
