package picocad

import (
	"fmt"

	"picocad-tools/pkg/scene"
)

// TextureSize is the side length of the texture grid in the output
// format. The grid is always emitted at exactly this size.
const TextureSize = 128

// Admissible reports whether a texture may occupy the export's shared
// texture slot. Anything larger than 128 per axis is discarded.
func Admissible(t *scene.Texture) bool {
	return t.Width <= TextureSize && t.Height <= TextureSize
}

// Encodable reports whether a texture can be rendered into the grid.
// The grid has fixed 128-character rows, so row wrapping is only
// well-defined for an exactly 128x128 bitmap.
func Encodable(t *scene.Texture) bool {
	return t.Width == TextureSize && t.Height == TextureSize
}

// EncodeTexture renders a 128x128 texture as 128 rows of palette
// codes, top row first. Texture pixels are stored bottom row first, so
// the rows come out in reverse pixel order; that is the vertical flip
// the format wants.
func EncodeTexture(q *Quantizer, t *scene.Texture) ([]string, error) {
	if !Encodable(t) {
		return nil, fmt.Errorf("picocad: texture must be %dx%d to encode, got %dx%d",
			TextureSize, TextureSize, t.Width, t.Height)
	}

	rows := make([]string, 0, TextureSize)
	for y := TextureSize - 1; y >= 0; y-- {
		row := make([]byte, TextureSize)
		for x := 0; x < TextureSize; x++ {
			row[x] = q.Quantize(t.PixelColor(x, y)).Code
		}
		rows = append(rows, string(row))
	}
	return rows, nil
}
