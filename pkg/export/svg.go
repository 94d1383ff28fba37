package export

import (
	"fmt"
	"io"

	"picocad-tools/pkg/picocad"
	"picocad-tools/pkg/scene"
)

// SVGWriter draws a UV-layout preview: the 16x16 tile sheet with each
// face's UV polygon over it. Coordinates are in tile units, matching
// the uv values in the exported document.
type SVGWriter struct {
	w io.Writer
}

func NewSVGWriter(w io.Writer) *SVGWriter {
	return &SVGWriter{w: w}
}

func (s *SVGWriter) WriteHeader() {
	fmt.Fprintf(s.w, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1"
width="%dcm" height="%dcm" viewBox="0 0 %d %d">
<style>
	.grid { fill:none; stroke:#ccc; stroke-width:0.02; }
	.face { fill:none; stroke:black; stroke-width:0.05; }
</style>
`, tilesAcross, tilesAcross, tilesAcross, tilesAcross)
}

func (s *SVGWriter) WriteFooter() {
	fmt.Fprintln(s.w, "</svg>")
}

// WriteGrid draws one line per tile boundary.
func (s *SVGWriter) WriteGrid() {
	fmt.Fprintln(s.w, `<g id="grid">`)
	for i := 0; i <= tilesAcross; i++ {
		fmt.Fprintf(s.w, `<line x1="%d" y1="0" x2="%d" y2="%d" class="grid" />`+"\n", i, i, tilesAcross)
		fmt.Fprintf(s.w, `<line x1="0" y1="%d" x2="%d" y2="%d" class="grid" />`+"\n", i, tilesAcross, i)
	}
	fmt.Fprintln(s.w, `</g>`)
}

func (s *SVGWriter) WriteScene(sc *scene.Scene) {
	texW, texH := textureDims(sc)

	for i := range sc.Objects {
		obj := &sc.Objects[i]
		fmt.Fprintf(s.w, `<g id="%s_%d">`+"\n", picocad.SanitizeName(obj.Name), i)
		for _, face := range obj.Faces {
			s.writeFace(face, texW, texH)
		}
		fmt.Fprintln(s.w, `</g>`)
	}
}

func (s *SVGWriter) writeFace(face scene.Face, texW, texH int) {
	if len(face.UVs) == 0 {
		return
	}
	fmt.Fprint(s.w, `<polygon points="`)
	for i, uv := range face.UVs {
		if i > 0 {
			fmt.Fprint(s.w, " ")
		}
		u, v := tileUV(uv, texW, texH)
		// SVG y grows down, uv v grows up.
		fmt.Fprintf(s.w, "%.3f,%.3f", u, float64(tilesAcross)-v)
	}
	fmt.Fprintln(s.w, `" class="face" />`)
}

// ExportSVG writes a UV-layout preview of the scene to w.
func ExportSVG(sc *scene.Scene, w io.Writer) error {
	svg := NewSVGWriter(w)
	svg.WriteHeader()
	svg.WriteGrid()
	svg.WriteScene(sc)
	svg.WriteFooter()
	return nil
}
