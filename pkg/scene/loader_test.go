package scene

import (
	"strings"
	"testing"
)

const minimalScene = `
background: [1, 1, 1]
objects:
  - name: cube
    position: [1, 2, 3]
    vertices:
      - [0, 0, 0]
      - [1, 0, 0]
      - [0, 1, 0]
    faces:
      - indices: [0, 1, 2]
        uvs: [[0, 0], [1, 0], [0, 1]]
`

func TestLoadScene(t *testing.T) {
	s, err := Load(strings.NewReader(minimalScene), ".")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Background != (Color{R: 1, G: 1, B: 1}) {
		t.Errorf("background = %v, want white", s.Background)
	}
	if len(s.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(s.Objects))
	}

	obj := s.Objects[0]
	if obj.Name != "cube" {
		t.Errorf("name = %q, want cube", obj.Name)
	}
	if obj.Position != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("position = %v", obj.Position)
	}
	if len(obj.Vertices) != 3 || len(obj.Faces) != 1 {
		t.Fatalf("got %d vertices, %d faces", len(obj.Vertices), len(obj.Faces))
	}
	if got := obj.Faces[0].UVs; len(got) != 3 || got[1] != (UV{U: 1, V: 0}) {
		t.Errorf("uvs = %v", got)
	}
}

func TestLoadSceneDefaults(t *testing.T) {
	doc := `
objects:
  - name: minimal
    vertices: [[0, 0, 0]]
`
	s, err := Load(strings.NewReader(doc), ".")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	obj := s.Objects[0]
	if obj.Rotation != Identity() {
		t.Errorf("rotation = %v, want identity", obj.Rotation)
	}
	if obj.Scale != (Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale = %v, want unit", obj.Scale)
	}
	if obj.Material != nil {
		t.Error("absent material should stay nil")
	}
}

func TestLoadSceneMaterialDefaults(t *testing.T) {
	doc := `
objects:
  - name: painted
    vertices: [[0, 0, 0]]
    material:
      color: [1, 0, 0]
`
	s, err := Load(strings.NewReader(doc), ".")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	mat := s.Objects[0].Material
	if mat == nil {
		t.Fatal("material not loaded")
	}
	if !mat.DoubleSided {
		t.Error("double_sided should default to true")
	}
	if mat.BaseColor == nil || *mat.BaseColor != (Color{R: 1}) {
		t.Errorf("base color = %v, want red", mat.BaseColor)
	}
	if mat.Texture != nil {
		t.Error("texture should be nil without a path")
	}
}

func TestLoadSceneBadVector(t *testing.T) {
	doc := `
objects:
  - name: broken
    position: [1, 2]
`
	if _, err := Load(strings.NewReader(doc), "."); err == nil {
		t.Fatal("Load accepted a 2-component position")
	}
}

func TestLoadSceneBadRotation(t *testing.T) {
	doc := `
objects:
  - name: broken
    rotation: [1, 0, 0]
`
	if _, err := Load(strings.NewReader(doc), "."); err == nil {
		t.Fatal("Load accepted a 3-component rotation")
	}
}

func TestLoadSceneUnknownField(t *testing.T) {
	doc := `
objects:
  - name: typo
    vertexes: [[0, 0, 0]]
`
	if _, err := Load(strings.NewReader(doc), "."); err == nil {
		t.Fatal("Load accepted an unknown field")
	}
}
