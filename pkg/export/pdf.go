package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"picocad-tools/pkg/picocad"
	"picocad-tools/pkg/scene"
)

// ExportPDF writes a two-page reference sheet: the 16-color palette
// with indices and texture codes, then the scene's UV layout on the
// tile grid. Uses "github.com/go-pdf/fpdf".
func ExportPDF(sc *scene.Scene, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 10)

	writePalettePage(pdf)
	writeUVPage(pdf, sc)

	return pdf.Output(w)
}

func writePalettePage(pdf *fpdf.Fpdf) {
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Text(20, 20, "Palette")
	pdf.SetFont("Arial", "", 10)

	// 4x4 swatch grid.
	const (
		swatch = 30.0
		gap    = 12.0
		left   = 20.0
		top    = 30.0
	)
	for _, pc := range picocad.Palette {
		col := pc.Index % 4
		row := pc.Index / 4
		x := left + float64(col)*(swatch+gap)
		y := top + float64(row)*(swatch+gap)

		r, g, b := rgb255(pc.RGB)
		pdf.SetFillColor(r, g, b)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, y, swatch, swatch, "FD")
		pdf.Text(x, y+swatch+5, fmt.Sprintf("index %d  code '%c'", pc.Index, pc.Code))
	}
}

func writeUVPage(pdf *fpdf.Fpdf, sc *scene.Scene) {
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Text(20, 20, "UV layout")

	// One tile = 10mm, so the sheet spans 160mm.
	const (
		tileMM = 10.0
		left   = 20.0
		top    = 30.0
	)

	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(200, 200, 200)
	for i := 0; i <= tilesAcross; i++ {
		p := float64(i) * tileMM
		pdf.Line(left+p, top, left+p, top+tilesAcross*tileMM)
		pdf.Line(left, top+p, left+tilesAcross*tileMM, top+p)
	}

	texW, texH := textureDims(sc)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	for _, obj := range sc.Objects {
		for _, face := range obj.Faces {
			if len(face.UVs) == 0 {
				continue
			}
			for i := range face.UVs {
				u1, v1 := tileUV(face.UVs[i], texW, texH)
				u2, v2 := tileUV(face.UVs[(i+1)%len(face.UVs)], texW, texH)
				// Page y grows down, uv v grows up.
				pdf.Line(
					left+u1*tileMM, top+(tilesAcross-v1)*tileMM,
					left+u2*tileMM, top+(tilesAcross-v2)*tileMM)
			}
		}
	}
}
