package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"picocad-tools/pkg/export"
	"picocad-tools/pkg/picocad"
	"picocad-tools/pkg/scene"
)

func main() {
	output := flag.String("output", "", "Output file path")
	name := flag.String("name", "", "Model name for the file header (default: scene file name)")
	preview := flag.String("preview", "", "Write a UV layout preview next to the output (svg, pdf)")
	dumpTexture := flag.Bool("dump-texture", false, "Dump the quantized texture grid to a PNG file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: picocad-tools [options] <scene.yaml>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputFile := args[0]
	base := strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
	if *output == "" {
		*output = base + ".txt"
	}
	if *name == "" {
		*name = filepath.Base(base)
	}

	sc, err := scene.LoadFile(inputFile)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	// Convert fully in memory first. The output file is only created
	// once the document exists, so a failed conversion leaves nothing
	// behind.
	doc, warnings, err := picocad.Convert(sc, *name)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if err != nil {
		fmt.Printf("Error converting scene: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, []byte(doc), 0o644); err != nil {
		fmt.Printf("Error writing output file: %v\n", err)
		os.Exit(1)
	}

	if *dumpTexture {
		texName := strings.TrimSuffix(*output, filepath.Ext(*output)) + "_texture.png"
		if err := dumpTextureGrid(doc, texName); err != nil {
			fmt.Printf("Error dumping texture: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Dumped texture grid to %s\n", texName)
	}

	if *preview != "" {
		previewName := strings.TrimSuffix(*output, filepath.Ext(*output)) + "_uv." + *preview
		if err := writePreview(sc, *preview, previewName); err != nil {
			fmt.Printf("Error writing preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote preview to %s\n", previewName)
	}

	fmt.Printf("Exported to %s\n", *output)
}

func writePreview(sc *scene.Scene, format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "pdf":
		return export.ExportPDF(sc, f)
	case "svg":
		return export.ExportSVG(sc, f)
	}
	return fmt.Errorf("unknown preview format %q (want svg or pdf)", format)
}

// dumpTextureGrid renders the document's texture section back into a
// PNG through the palette, to show what quantization did to the
// source bitmap. The grid is the last 128 lines of the document.
func dumpTextureGrid(doc, path string) error {
	lines := strings.Split(doc, "\n")
	if len(lines) < picocad.TextureSize {
		return fmt.Errorf("document has no texture grid")
	}
	rows := lines[len(lines)-picocad.TextureSize:]

	img := image.NewRGBA(image.Rect(0, 0, picocad.TextureSize, picocad.TextureSize))
	for y, row := range rows {
		for x := 0; x < len(row) && x < picocad.TextureSize; x++ {
			pc, ok := picocad.PaletteByCode(row[x])
			if !ok {
				return fmt.Errorf("texture grid has unknown code %q", row[x])
			}
			img.Set(x, y, color.RGBA{
				R: uint8(pc.RGB.R*255 + 0.5),
				G: uint8(pc.RGB.G*255 + 0.5),
				B: uint8(pc.RGB.B*255 + 0.5),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
