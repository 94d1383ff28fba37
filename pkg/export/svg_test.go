package export

import (
	"bytes"
	"strings"
	"testing"

	"picocad-tools/pkg/scene"
)

func uvScene() *scene.Scene {
	return &scene.Scene{
		Objects: []scene.MeshObject{{
			Name:     "quad",
			Rotation: scene.Identity(),
			Scale:    scene.Vec3{X: 1, Y: 1, Z: 1},
			Vertices: []scene.Vec3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
			Faces: []scene.Face{{
				Indices: []int{0, 1, 2, 3},
				UVs:     []scene.UV{{}, {U: 0.5}, {U: 0.5, V: 0.5}, {V: 0.5}},
			}},
		}},
	}
}

func TestExportSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportSVG(uvScene(), &buf); err != nil {
		t.Fatalf("ExportSVG failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, `<?xml`) || !strings.Contains(out, "</svg>") {
		t.Error("output is not a complete SVG document")
	}
	if !strings.Contains(out, `<g id="quad_0">`) {
		t.Error("object group missing")
	}
	// uv (0.5, 0) on the full sheet is tile (8, 0); v flips so y=16.
	if !strings.Contains(out, `8.000,16.000`) {
		t.Errorf("scaled uv point missing:\n%s", out)
	}
}

func TestExportSVGSkipsFacesWithoutUVs(t *testing.T) {
	s := uvScene()
	s.Objects[0].Faces[0].UVs = nil

	var buf bytes.Buffer
	if err := ExportSVG(s, &buf); err != nil {
		t.Fatalf("ExportSVG failed: %v", err)
	}
	if strings.Contains(buf.String(), "<polygon") {
		t.Error("polygon emitted for a face without uvs")
	}
}

func TestExportPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportPDF(uvScene(), &buf); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}
