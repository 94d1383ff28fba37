package picocad

import (
	"math"

	"picocad-tools/pkg/scene"
)

// PaletteColor is one of the 16 colors picoCAD supports. Colors are
// written as an index for mesh/background/alpha fields and as a single
// character code inside the texture grid.
type PaletteColor struct {
	Index int
	Code  byte
	RGB   scene.Color
}

// DefaultColorIndex is the mesh color used when a material resolves to
// neither a texture nor a base color (light gray).
const DefaultColorIndex = 6

// Palette is the fixed color table, in index order: black, dark blue,
// violet, dark green, brown, dark gray, light gray, white, red,
// orange, yellow, light green, light blue, gray blue, pink, tan.
// The RGB values are the PICO-8 colors in linear space, which is what
// quantization runs against.
var Palette = [16]PaletteColor{
	{0, '0', scene.Color{R: 0, G: 0, B: 0}},
	{1, '1', scene.Color{R: 0.012286489829421043, G: 0.024157628417015076, B: 0.08650047332048416}},
	{2, '2', scene.Color{R: 0.20863690972328186, G: 0.01850022003054619, B: 0.08650047332048416}},
	{3, '3', scene.Color{R: 0, G: 0.24228115379810333, B: 0.08228270709514618}},
	{4, '4', scene.Color{R: 0.40724021196365356, G: 0.08437623083591461, B: 0.0368894599378109}},
	{5, '5', scene.Color{R: 0.11443537473678589, G: 0.09530746936798096, B: 0.07818741351366043}},
	{6, '6', scene.Color{R: 0.539479672908783, G: 0.5457245707511902, B: 0.5711249709129333}},
	{7, '7', scene.Color{R: 1, G: 0.8796226382255554, B: 0.8069523572921753}},
	{8, '8', scene.Color{R: 1, G: 0, B: 0.07421357929706573}},
	{9, '9', scene.Color{R: 1, G: 0.3662526309490204, B: 0}},
	{10, 'a', scene.Color{R: 1, G: 0.8387991189956665, B: 0.020288560539484024}},
	{11, 'b', scene.Color{R: 0, G: 0.7758224010467529, B: 0.0368894599378109}},
	{12, 'c', scene.Color{R: 0.022173885256052017, G: 0.4178851246833801, B: 1}},
	{13, 'd', scene.Color{R: 0.22696588933467865, G: 0.18116429448127747, B: 0.33245155215263367}},
	{14, 'e', scene.Color{R: 1, G: 0.18447501957416534, B: 0.3915724754333496}},
	{15, 'f', scene.Color{R: 1, G: 0.6038274168968201, B: 0.40197786688804626}},
}

// Quantizer maps arbitrary colors to their nearest palette entry.
// Lookups are memoized by exact input triple; create one per export
// run so the cache lifetime matches the run.
type Quantizer struct {
	cache map[scene.Color]PaletteColor
}

func NewQuantizer() *Quantizer {
	return &Quantizer{cache: make(map[scene.Color]PaletteColor)}
}

// Quantize returns the palette entry closest to c by Euclidean RGB
// distance. Ties keep the lower index.
func (q *Quantizer) Quantize(c scene.Color) PaletteColor {
	if pc, ok := q.cache[c]; ok {
		return pc
	}

	best := Palette[0]
	bestDist := math.Inf(1)
	for _, pc := range Palette {
		if d := colorDistance(c, pc.RGB); d < bestDist {
			bestDist = d
			best = pc
		}
	}

	q.cache[c] = best
	return best
}

// PaletteByCode returns the palette entry for a texture grid code.
func PaletteByCode(code byte) (PaletteColor, bool) {
	for _, pc := range Palette {
		if pc.Code == code {
			return pc, true
		}
	}
	return PaletteColor{}, false
}

func colorDistance(a, b scene.Color) float64 {
	dr := b.R - a.R
	dg := b.G - a.G
	db := b.B - a.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
