package picocad

import (
	"strings"
	"testing"

	"picocad-tools/pkg/scene"
)

// fillTexture builds a solid-color texture of the given size.
func fillTexture(w, h int, c scene.Color) *scene.Texture {
	t := &scene.Texture{Width: w, Height: h, Pixels: make([]float64, 0, w*h*4)}
	for i := 0; i < w*h; i++ {
		t.Pixels = append(t.Pixels, c.R, c.G, c.B, 1)
	}
	return t
}

func TestEncodeTextureSolid(t *testing.T) {
	tex := fillTexture(128, 128, scene.Color{R: 1, G: 0, B: 0})

	rows, err := EncodeTexture(NewQuantizer(), tex)
	if err != nil {
		t.Fatalf("EncodeTexture failed: %v", err)
	}
	if len(rows) != 128 {
		t.Fatalf("got %d rows, want 128", len(rows))
	}
	want := strings.Repeat("8", 128)
	for i, row := range rows {
		if row != want {
			t.Fatalf("row %d = %q, want all '8'", i, row)
		}
	}
}

func TestEncodeTextureFlipsVertically(t *testing.T) {
	// Bottom pixel row red, everything else black. Pixels are stored
	// bottom row first, so the red row must come out last.
	tex := fillTexture(128, 128, scene.Color{})
	for x := 0; x < 128; x++ {
		tex.Pixels[x*4] = 1 // R of row 0
	}

	rows, err := EncodeTexture(NewQuantizer(), tex)
	if err != nil {
		t.Fatalf("EncodeTexture failed: %v", err)
	}
	if got := rows[127]; got != strings.Repeat("8", 128) {
		t.Errorf("last row = %q, want all '8'", got)
	}
	if got := rows[0]; got != strings.Repeat("0", 128) {
		t.Errorf("first row = %q, want all '0'", got)
	}
}

func TestEncodeTextureIdempotent(t *testing.T) {
	tex := fillTexture(128, 128, scene.Color{R: 0.2, G: 0.7, B: 0.3})

	first, err := EncodeTexture(NewQuantizer(), tex)
	if err != nil {
		t.Fatalf("first encode failed: %v", err)
	}
	second, err := EncodeTexture(NewQuantizer(), tex)
	if err != nil {
		t.Fatalf("second encode failed: %v", err)
	}
	if strings.Join(first, "\n") != strings.Join(second, "\n") {
		t.Error("encoding the same texture twice gave different grids")
	}
}

func TestEncodeTextureRejectsNon128(t *testing.T) {
	tex := fillTexture(64, 64, scene.Color{})
	if _, err := EncodeTexture(NewQuantizer(), tex); err == nil {
		t.Error("EncodeTexture accepted a 64x64 texture")
	}
}

func TestAdmissible(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{128, 128, true},
		{64, 128, true},
		{16, 16, true},
		{256, 256, false},
		{129, 64, false},
		{64, 129, false},
	}
	for _, tt := range tests {
		tex := &scene.Texture{Width: tt.w, Height: tt.h}
		if got := Admissible(tex); got != tt.want {
			t.Errorf("Admissible(%dx%d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestDefaultTextureShape(t *testing.T) {
	rows := strings.Split(DefaultTexture, "\n")
	if len(rows) != 128 {
		t.Fatalf("default texture has %d rows, want 128", len(rows))
	}
	for i, row := range rows {
		if len(row) != 128 {
			t.Fatalf("default texture row %d has %d chars, want 128", i, len(row))
		}
		for j := 0; j < len(row); j++ {
			if _, ok := PaletteByCode(row[j]); !ok {
				t.Fatalf("default texture row %d col %d has invalid code %q", i, j, row[j])
			}
		}
	}
}
