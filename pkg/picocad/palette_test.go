package picocad

import (
	"testing"

	"picocad-tools/pkg/scene"
)

func TestQuantizePaletteSelfMatch(t *testing.T) {
	q := NewQuantizer()
	for _, pc := range Palette {
		got := q.Quantize(pc.RGB)
		if got.Index != pc.Index || got.Code != pc.Code {
			t.Errorf("Quantize(palette[%d].RGB) = (%d, %c), want (%d, %c)",
				pc.Index, got.Index, got.Code, pc.Index, pc.Code)
		}
	}
}

func TestQuantizeNearest(t *testing.T) {
	tests := []struct {
		name  string
		color scene.Color
		index int
	}{
		{"pure red", scene.Color{R: 1, G: 0, B: 0}, 8},
		{"pure white", scene.Color{R: 1, G: 1, B: 1}, 7},
		{"mid gray", scene.Color{R: 0.5, G: 0.5, B: 0.5}, 6},
		{"near black", scene.Color{R: 0.001, G: 0.001, B: 0.001}, 0},
	}

	q := NewQuantizer()
	for _, tt := range tests {
		got := q.Quantize(tt.color)
		if got.Index != tt.index {
			t.Errorf("%s: Quantize(%v) index = %d, want %d", tt.name, tt.color, got.Index, tt.index)
		}
	}
}

func TestQuantizeMemoizes(t *testing.T) {
	q := NewQuantizer()
	c := scene.Color{R: 0.3, G: 0.6, B: 0.9}

	first := q.Quantize(c)
	if len(q.cache) != 1 {
		t.Fatalf("cache has %d entries after one lookup, want 1", len(q.cache))
	}

	second := q.Quantize(c)
	if first != second {
		t.Errorf("repeated Quantize gave %v then %v", first, second)
	}

	// Poison the cache entry. If the second lookup recomputed instead
	// of hitting the cache, this would not show through.
	q.cache[c] = Palette[3]
	if got := q.Quantize(c); got != Palette[3] {
		t.Errorf("Quantize bypassed the cache: got %v", got)
	}
}

func TestQuantizeCacheDoesNotChangeResult(t *testing.T) {
	c := scene.Color{R: 0.9, G: 0.1, B: 0.2}

	cold := NewQuantizer().Quantize(c)
	warm := NewQuantizer()
	warm.Quantize(c)
	if got := warm.Quantize(c); got != cold {
		t.Errorf("cached result %v differs from cold result %v", got, cold)
	}
}

func TestPaletteByCode(t *testing.T) {
	for _, pc := range Palette {
		got, ok := PaletteByCode(pc.Code)
		if !ok || got.Index != pc.Index {
			t.Errorf("PaletteByCode(%c) = %v, %v", pc.Code, got, ok)
		}
	}
	if _, ok := PaletteByCode('z'); ok {
		t.Error("PaletteByCode('z') reported a match")
	}
}
