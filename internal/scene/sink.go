package scene

import "github.com/Faultbox/rtscene/pkg/primitive"

// BufferSink receives packed records for GPU-resident storage.
// Each category is bound independently together with its record count.
type BufferSink interface {
	UploadSpheres(spheres []primitive.Sphere) error
	UploadTriangles(triangles []primitive.Triangle) error
	// Clear drops both bindings and resets both counts to zero.
	Clear() error
}

// Publish hands a packed scene to sink.
//
// An empty category is not uploaded: the sink keeps whatever it bound for
// that category before. Call sink.Clear to drop stale geometry.
func Publish(sink BufferSink, packed *PackedScene) error {
	if packed == nil {
		return nil
	}
	if len(packed.Spheres) > 0 {
		if err := sink.UploadSpheres(packed.Spheres); err != nil {
			return err
		}
	}
	if len(packed.Triangles) > 0 {
		if err := sink.UploadTriangles(packed.Triangles); err != nil {
			return err
		}
	}
	return nil
}

// Sync publishes packed. With clearStale set, a scene with an empty
// category clears the sink first so no records from earlier frames stay bound.
func Sync(sink BufferSink, packed *PackedScene, clearStale bool) error {
	if packed == nil {
		return nil
	}
	if clearStale && (len(packed.Spheres) == 0 || len(packed.Triangles) == 0) {
		if err := sink.Clear(); err != nil {
			return err
		}
	}
	return Publish(sink, packed)
}

// MemorySink is a BufferSink that keeps serialized words in memory.
type MemorySink struct {
	SphereWords   []float32
	SphereCount   int
	TriangleWords []float32
	TriangleCount int
	Uploads       int
}

// UploadSpheres implements BufferSink.
func (m *MemorySink) UploadSpheres(spheres []primitive.Sphere) error {
	m.SphereWords = primitive.SphereWords(spheres)
	m.SphereCount = len(spheres)
	m.Uploads++
	return nil
}

// UploadTriangles implements BufferSink.
func (m *MemorySink) UploadTriangles(triangles []primitive.Triangle) error {
	m.TriangleWords = primitive.TriangleWords(triangles)
	m.TriangleCount = len(triangles)
	m.Uploads++
	return nil
}

// Clear implements BufferSink.
func (m *MemorySink) Clear() error {
	m.SphereWords, m.TriangleWords = nil, nil
	m.SphereCount, m.TriangleCount = 0, 0
	return nil
}
