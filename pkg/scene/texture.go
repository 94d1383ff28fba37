package scene

import (
	"fmt"
	"image"
	"os"

	// Decoders for image.Decode. The stdlib covers PNG/JPEG/GIF; BMP
	// comes from x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// LoadTexture decodes a bitmap file into a Texture.
func LoadTexture(filename string) (*Texture, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into the Texture pixel layout.
// image.Image is top row first; Texture stores bottom row first, so
// rows are written in reverse.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	t := &Texture{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: make([]float64, 0, b.Dx()*b.Dy()*4),
	}

	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			t.Pixels = append(t.Pixels,
				float64(r)/0xffff,
				float64(g)/0xffff,
				float64(bl)/0xffff,
				float64(a)/0xffff)
		}
	}
	return t
}
