package scene

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAML scene description. This is the CLI-facing input boundary; the
// converter itself only ever sees the built Scene value.

type sceneFile struct {
	Background []float64    `yaml:"background"`
	Objects    []objectFile `yaml:"objects"`
}

type objectFile struct {
	Name     string        `yaml:"name"`
	Position []float64     `yaml:"position"`
	Rotation []float64     `yaml:"rotation"`
	Scale    []float64     `yaml:"scale"`
	Vertices [][]float64   `yaml:"vertices"`
	Faces    []faceFile    `yaml:"faces"`
	Material *materialFile `yaml:"material"`
}

type faceFile struct {
	Indices []int       `yaml:"indices"`
	UVs     [][]float64 `yaml:"uvs"`
}

type materialFile struct {
	// Pointer so an absent key keeps the format's default (true).
	DoubleSided *bool     `yaml:"double_sided"`
	Color       []float64 `yaml:"color"`
	Texture     string    `yaml:"texture"`
}

// LoadFile reads a YAML scene description from disk. Texture paths in
// the file are resolved relative to the file's directory.
func LoadFile(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, filepath.Dir(filename))
}

// Load reads a YAML scene description from r. dir is the base
// directory for relative texture paths.
func Load(r io.Reader, dir string) (*Scene, error) {
	var sf sceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	s := &Scene{}

	bg, err := colorOf("background", sf.Background, Color{})
	if err != nil {
		return nil, err
	}
	s.Background = bg

	for i, of := range sf.Objects {
		obj, err := buildObject(of, dir)
		if err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", i, of.Name, err)
		}
		s.Objects = append(s.Objects, obj)
	}

	return s, nil
}

func buildObject(of objectFile, dir string) (MeshObject, error) {
	obj := MeshObject{
		Name:     of.Name,
		Rotation: Identity(),
		Scale:    Vec3{1, 1, 1},
	}

	var err error
	if obj.Position, err = vec3Of("position", of.Position, Vec3{}); err != nil {
		return obj, err
	}
	if len(of.Rotation) > 0 {
		if len(of.Rotation) != 4 {
			return obj, fmt.Errorf("rotation must have 4 components [w,x,y,z], got %d", len(of.Rotation))
		}
		obj.Rotation = Quat{of.Rotation[0], of.Rotation[1], of.Rotation[2], of.Rotation[3]}
	}
	if obj.Scale, err = vec3Of("scale", of.Scale, Vec3{1, 1, 1}); err != nil {
		return obj, err
	}

	for i, v := range of.Vertices {
		vert, err := vec3Of(fmt.Sprintf("vertex %d", i), v, Vec3{})
		if err != nil {
			return obj, err
		}
		obj.Vertices = append(obj.Vertices, vert)
	}

	for _, ff := range of.Faces {
		face := Face{Indices: ff.Indices}
		for i, uv := range ff.UVs {
			if len(uv) != 2 {
				return obj, fmt.Errorf("uv %d must have 2 components, got %d", i, len(uv))
			}
			face.UVs = append(face.UVs, UV{uv[0], uv[1]})
		}
		obj.Faces = append(obj.Faces, face)
	}

	if of.Material != nil {
		mat, err := buildMaterial(*of.Material, dir)
		if err != nil {
			return obj, err
		}
		obj.Material = mat
	}

	return obj, nil
}

func buildMaterial(mf materialFile, dir string) (*Material, error) {
	mat := &Material{DoubleSided: true}
	if mf.DoubleSided != nil {
		mat.DoubleSided = *mf.DoubleSided
	}

	if len(mf.Color) > 0 {
		c, err := colorOf("material color", mf.Color, Color{})
		if err != nil {
			return nil, err
		}
		mat.BaseColor = &c
	}

	if mf.Texture != "" {
		path := mf.Texture
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		tex, err := LoadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture %s: %w", mf.Texture, err)
		}
		mat.Texture = tex
	}

	return mat, nil
}

func vec3Of(name string, vals []float64, def Vec3) (Vec3, error) {
	if len(vals) == 0 {
		return def, nil
	}
	if len(vals) != 3 {
		return Vec3{}, fmt.Errorf("%s must have 3 components, got %d", name, len(vals))
	}
	return Vec3{vals[0], vals[1], vals[2]}, nil
}

func colorOf(name string, vals []float64, def Color) (Color, error) {
	if len(vals) == 0 {
		return def, nil
	}
	if len(vals) != 3 {
		return Color{}, fmt.Errorf("%s must have 3 components, got %d", name, len(vals))
	}
	return Color{vals[0], vals[1], vals[2]}, nil
}
