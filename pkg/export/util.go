package export

import (
	"picocad-tools/pkg/picocad"
	"picocad-tools/pkg/scene"
)

// tilesAcross is the width of the texture sheet in UV units (128
// pixels at 8 pixels per tile).
const tilesAcross = picocad.TextureSize / 8

// textureDims returns the dimensions driving UV scaling: the shared
// texture's size when one is admissible, the full sheet otherwise.
// Mirrors the converter's texture slot selection.
func textureDims(s *scene.Scene) (int, int) {
	for _, obj := range s.Objects {
		if obj.Material == nil || obj.Material.Texture == nil {
			continue
		}
		t := obj.Material.Texture
		if picocad.Admissible(t) {
			return t.Width, t.Height
		}
		return picocad.TextureSize, picocad.TextureSize
	}
	return picocad.TextureSize, picocad.TextureSize
}

// tileUV converts a [0,1] UV pair into sheet tile coordinates, the
// same mapping the face emitter uses.
func tileUV(uv scene.UV, texW, texH int) (float64, float64) {
	return uv.U * float64(texW) / 8, uv.V * float64(texH) / 8
}

// rgb255 converts a [0,1] color to 8-bit channels for preview output.
func rgb255(c scene.Color) (int, int, int) {
	return int(c.R*255 + 0.5), int(c.G*255 + 0.5), int(c.B*255 + 0.5)
}
