// Package scenefile loads YAML scene descriptions into packer sources.
package scenefile

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/rtscene/internal/scene"
	"github.com/Faultbox/rtscene/pkg/primitive"
)

// Scene file errors.
var (
	ErrUnknownShape  = errors.New("unknown shape")
	ErrMissingMesh   = errors.New("mesh needs a shape or vertices")
	ErrInvalidVector = errors.New("invalid vector")
)

// File is the on-disk scene description.
type File struct {
	Spheres []SphereEntry `yaml:"spheres"`
	Meshes  []MeshEntry   `yaml:"meshes"`
}

// MaterialEntry describes a material. Colors are RGBA.
type MaterialEntry struct {
	Color            []float32 `yaml:"color"`
	EmissionColor    []float32 `yaml:"emission_color"`
	EmissionStrength float32   `yaml:"emission_strength"`
}

// TransformEntry describes placement. Rotation is Euler degrees.
type TransformEntry struct {
	Position []float32 `yaml:"position"`
	Rotation []float32 `yaml:"rotation"`
	Scale    []float32 `yaml:"scale"`
}

// SphereEntry describes one sphere. Scale is the sphere's diameter.
type SphereEntry struct {
	Name     string        `yaml:"name"`
	Position []float32     `yaml:"position"`
	Scale    float32       `yaml:"scale"`
	Material MaterialEntry `yaml:"material"`
}

// MeshEntry describes one mesh, either a built-in shape or inline geometry.
type MeshEntry struct {
	Name        string         `yaml:"name"`
	Shape       string         `yaml:"shape"`
	Vertices    [][]float32    `yaml:"vertices"`
	Indices     []uint32       `yaml:"indices"`
	Transform   TransformEntry `yaml:"transform"`
	Material    MaterialEntry  `yaml:"material"`
	FlipNormals bool           `yaml:"flip_normals"`
}

// Scene is a loaded scene ready for packing.
type Scene struct {
	Spheres []*scene.StaticSphere
	Meshes  []*scene.StaticMesh
}

// SphereSources returns the spheres as packer sources.
func (s *Scene) SphereSources() []scene.SphereSource {
	out := make([]scene.SphereSource, len(s.Spheres))
	for i, sp := range s.Spheres {
		out[i] = sp
	}
	return out
}

// MeshSources returns the meshes as packer sources.
func (s *Scene) MeshSources() []scene.MeshSource {
	out := make([]scene.MeshSource, len(s.Meshes))
	for i, m := range s.Meshes {
		out[i] = m
	}
	return out
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from YAML data.
//
// Mesh index data is not validated here; malformed meshes surface from the
// packer so that a bad entry fails the frame rather than the load.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	s := &Scene{}
	for i, e := range f.Spheres {
		sp, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("sphere %s: %w", entryName(e.Name, i), err)
		}
		s.Spheres = append(s.Spheres, sp)
	}
	for i, e := range f.Meshes {
		m, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("mesh %s: %w", entryName(e.Name, i), err)
		}
		s.Meshes = append(s.Meshes, m)
	}
	return s, nil
}

func entryName(name string, i int) string {
	if name != "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("#%d", i)
}

func (e SphereEntry) build() (*scene.StaticSphere, error) {
	pos, err := vec3(e.Position, mgl32.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	mat, err := e.Material.build()
	if err != nil {
		return nil, err
	}
	scale := e.Scale
	if scale == 0 {
		scale = 1
	}
	return &scene.StaticSphere{
		Name: e.Name,
		Transform: scene.Transform{
			Position: pos,
			Scale:    mgl32.Vec3{scale, scale, scale},
		},
		Material: mat,
	}, nil
}

func (e MeshEntry) build() (*scene.StaticMesh, error) {
	var (
		verts   []mgl32.Vec3
		indices []uint32
	)
	switch {
	case e.Shape != "":
		shape, ok := shapes[e.Shape]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownShape, e.Shape)
		}
		verts, indices = shape()
	case len(e.Vertices) > 0:
		verts = make([]mgl32.Vec3, len(e.Vertices))
		for i, v := range e.Vertices {
			var err error
			if verts[i], err = vec3(v, mgl32.Vec3{}); err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
		}
		indices = e.Indices
	default:
		return nil, ErrMissingMesh
	}

	tr, err := e.Transform.build()
	if err != nil {
		return nil, err
	}
	mat, err := e.Material.build()
	if err != nil {
		return nil, err
	}

	return &scene.StaticMesh{
		Name:        e.Name,
		Vertices:    verts,
		Indices:     indices,
		Transform:   tr,
		Material:    mat,
		FlipNormals: e.FlipNormals,
	}, nil
}

func (e TransformEntry) build() (scene.Transform, error) {
	pos, err := vec3(e.Position, mgl32.Vec3{})
	if err != nil {
		return scene.Transform{}, fmt.Errorf("position: %w", err)
	}
	rot, err := vec3(e.Rotation, mgl32.Vec3{})
	if err != nil {
		return scene.Transform{}, fmt.Errorf("rotation: %w", err)
	}
	scale, err := vec3(e.Scale, mgl32.Vec3{1, 1, 1})
	if err != nil {
		return scene.Transform{}, fmt.Errorf("scale: %w", err)
	}
	return scene.Transform{Position: pos, Rotation: rot, Scale: scale}, nil
}

func (e MaterialEntry) build() (primitive.Material, error) {
	color, err := vec4(e.Color, mgl32.Vec4{1, 1, 1, 1})
	if err != nil {
		return primitive.Material{}, fmt.Errorf("color: %w", err)
	}
	emission, err := vec4(e.EmissionColor, mgl32.Vec4{})
	if err != nil {
		return primitive.Material{}, fmt.Errorf("emission_color: %w", err)
	}
	return primitive.NewMaterial(color, emission, e.EmissionStrength), nil
}

func vec3(v []float32, def mgl32.Vec3) (mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl32.Vec3{}, fmt.Errorf("%w: want 3 components, got %d", ErrInvalidVector, len(v))
	}
}

// vec4 accepts RGB (alpha 1) or RGBA.
func vec4(v []float32, def mgl32.Vec4) (mgl32.Vec4, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl32.Vec4{v[0], v[1], v[2], 1}, nil
	case 4:
		return mgl32.Vec4{v[0], v[1], v[2], v[3]}, nil
	default:
		return mgl32.Vec4{}, fmt.Errorf("%w: want 3 or 4 components, got %d", ErrInvalidVector, len(v))
	}
}
