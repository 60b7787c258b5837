package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rtscene/internal/geometry"
	"github.com/Faultbox/rtscene/pkg/primitive"
)

var red = primitive.NewMaterial(mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec4{}, 0)

func triangleMesh(pos mgl32.Vec3) *StaticMesh {
	return &StaticMesh{
		Name:     "tri",
		Vertices: []mgl32.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 3, 0}},
		Indices:  []uint32{0, 1, 2},
		Transform: Transform{
			Position: pos,
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		Material: red,
	}
}

func quadMesh() *StaticMesh {
	return &StaticMesh{
		Name:      "quad",
		Vertices:  []mgl32.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
		Transform: IdentityTransform(),
	}
}

func TestPackEmpty(t *testing.T) {
	p := NewPacker()
	packed, err := p.Pack(nil, nil)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if packed.SphereCount() != 0 || packed.TriangleCount() != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", packed.SphereCount(), packed.TriangleCount())
	}
	if len(packed.Spheres) != 0 || len(packed.Triangles) != 0 {
		t.Errorf("records = (%v, %v), want empty", packed.Spheres, packed.Triangles)
	}
}

func TestPackSphere(t *testing.T) {
	mat := primitive.NewMaterial(mgl32.Vec4{0, 1, 0, 1}, mgl32.Vec4{1, 1, 1, 1}, 5)
	src := &StaticSphere{
		Transform: Transform{Position: mgl32.Vec3{1, 2, 3}, Scale: mgl32.Vec3{4, 4, 4}},
		Material:  mat,
	}

	packed, err := NewPacker().Pack([]SphereSource{src}, nil)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if packed.SphereCount() != 1 {
		t.Fatalf("SphereCount() = %d, want 1", packed.SphereCount())
	}

	s := packed.Spheres[0]
	if s.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position = %v, want (1,2,3)", s.Position)
	}
	if s.Radius != 2 {
		t.Errorf("Radius = %v, want 2", s.Radius)
	}
	if s.Material != mat {
		t.Errorf("Material = %+v, want %+v", s.Material, mat)
	}
}

func TestPackSphereNonUniformScaleUsesX(t *testing.T) {
	src := &StaticSphere{Transform: Transform{Scale: mgl32.Vec3{2, 10, 20}}}
	packed, err := NewPacker().Pack([]SphereSource{src}, nil)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if got := packed.Spheres[0].Radius; got != 1 {
		t.Errorf("Radius = %v, want 1", got)
	}
}

func TestPackMeshesInOrder(t *testing.T) {
	first := triangleMesh(mgl32.Vec3{0, 0, 0})
	second := quadMesh()
	third := triangleMesh(mgl32.Vec3{0, 0, 10})

	packed, err := NewPacker().Pack(nil, []MeshSource{first, second, third})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if packed.TriangleCount() != 4 {
		t.Fatalf("TriangleCount() = %d, want 4", packed.TriangleCount())
	}
	if packed.Triangles[0].Material != red {
		t.Errorf("first triangle material = %+v, want red", packed.Triangles[0].Material)
	}
	if packed.Triangles[1].Material != (primitive.Material{}) {
		t.Errorf("second triangle should come from the quad")
	}
	if got := packed.Triangles[3].A.Z(); got != 10 {
		t.Errorf("last triangle A.z = %v, want 10", got)
	}
	if got := packed.Triangles[0].Normal.Len(); got != 6 {
		t.Errorf("|Normal| = %v, want 6", got)
	}
}

func TestPackDeterministic(t *testing.T) {
	spheres := []SphereSource{
		&StaticSphere{Transform: Transform{Position: mgl32.Vec3{0.1, 0.2, 0.3}, Scale: mgl32.Vec3{1.5, 1.5, 1.5}}},
	}
	mesh := quadMesh()
	mesh.Transform = Transform{
		Position: mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.Vec3{15, 30, 45},
		Scale:    mgl32.Vec3{1, 2, 3},
	}
	mesh.FlipNormals = true
	meshes := []MeshSource{mesh, triangleMesh(mgl32.Vec3{4, 5, 6})}

	p := NewPacker()
	a, err := p.Pack(spheres, meshes)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	b, err := p.Pack(spheres, meshes)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	wa := primitive.TriangleWords(a.Triangles)
	wb := primitive.TriangleWords(b.Triangles)
	if len(wa) != len(wb) {
		t.Fatalf("word counts differ: %d vs %d", len(wa), len(wb))
	}
	for i := range wa {
		if math.Float32bits(wa[i]) != math.Float32bits(wb[i]) {
			t.Fatalf("word %d differs: %v vs %v", i, wa[i], wb[i])
		}
	}
	if a.Spheres[0] != b.Spheres[0] {
		t.Errorf("spheres differ: %+v vs %+v", a.Spheres[0], b.Spheres[0])
	}
	if p.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", p.Frames())
	}
}

func TestPackMalformedKeepsLast(t *testing.T) {
	p := NewPacker()
	good, err := p.Pack(nil, []MeshSource{quadMesh()})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	bad := quadMesh()
	bad.Indices = []uint32{0, 1, 4}

	packed, err := p.Pack(
		[]SphereSource{&StaticSphere{Transform: IdentityTransform()}},
		[]MeshSource{triangleMesh(mgl32.Vec3{}), bad},
	)
	if !errors.Is(err, geometry.ErrMalformedMesh) {
		t.Fatalf("Pack() error = %v, want ErrMalformedMesh", err)
	}
	if packed != nil {
		t.Errorf("Pack() returned partial scene on error")
	}
	if p.Last() != good {
		t.Errorf("Last() changed after failed pack")
	}
	if p.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", p.Frames())
	}
}

type countingMesh struct {
	StaticMesh
	refreshes int
	snapshots int
}

func (c *countingMesh) UpdateProperties() { c.refreshes++ }

func (c *countingMesh) MeshSnapshot() MeshSnapshot {
	c.snapshots++
	return c.StaticMesh.MeshSnapshot()
}

type countingSphere struct {
	StaticSphere
	refreshes int
	snapshots int
}

func (c *countingSphere) UpdateProperties() {
	c.refreshes++
	c.Transform.Position = mgl32.Vec3{9, 9, 9}
}

func (c *countingSphere) SphereSnapshot() SphereSnapshot {
	c.snapshots++
	return c.StaticSphere.SphereSnapshot()
}

func TestPackRefreshesThenSnapshotsOnce(t *testing.T) {
	mesh := &countingMesh{StaticMesh: *quadMesh()}
	sphere := &countingSphere{StaticSphere: StaticSphere{Transform: IdentityTransform()}}

	packed, err := NewPacker().Pack([]SphereSource{sphere}, []MeshSource{mesh})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if mesh.refreshes != 1 || mesh.snapshots != 1 {
		t.Errorf("mesh refreshes/snapshots = %d/%d, want 1/1", mesh.refreshes, mesh.snapshots)
	}
	if sphere.refreshes != 1 || sphere.snapshots != 1 {
		t.Errorf("sphere refreshes/snapshots = %d/%d, want 1/1", sphere.refreshes, sphere.snapshots)
	}
	if got := packed.Spheres[0].Position; got != (mgl32.Vec3{9, 9, 9}) {
		t.Errorf("Position = %v, want refreshed (9,9,9)", got)
	}
}

func TestPackedSceneStats(t *testing.T) {
	packed := &PackedScene{
		Spheres:   make([]primitive.Sphere, 2),
		Triangles: make([]primitive.Triangle, 3),
	}
	want := Stats{Spheres: 2, Triangles: 3, SphereBytes: 104, TriangleBytes: 252}
	if got := packed.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestStaticMeshSnapshotBounds(t *testing.T) {
	snap := quadMesh().MeshSnapshot()
	if want := (mgl32.Vec3{1, 1, 0}); snap.BoundsExtents != want {
		t.Errorf("BoundsExtents = %v, want %v", snap.BoundsExtents, want)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.Vec3{0, 90, 0},
		Scale:    mgl32.Vec3{2, 2, 2},
	}
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.Matrix())
	// Scale to (2,0,0), rotate 90 degrees about Y to (0,0,-2), translate.
	want := mgl32.Vec3{1, 2, 1}
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Fatalf("TransformCoordinate() = %v, want %v", got, want)
		}
	}

	if IdentityTransform().Matrix() != mgl32.Ident4() {
		t.Errorf("IdentityTransform().Matrix() is not identity")
	}
}
