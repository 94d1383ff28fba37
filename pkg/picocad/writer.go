package picocad

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"picocad-tools/pkg/scene"
)

// zoomLevel and alphaColor are fixed header fields; picoCAD reads them
// but the exporter has nothing meaningful to put there.
const (
	zoomLevel  = 16
	alphaColor = 0
)

// paintKind tags how a material's color state resolved. Resolution is
// ordered and total: texture link, then base color, then default.
type paintKind int

const (
	paintTexture paintKind = iota
	paintSolid
	paintDefault
)

type paint struct {
	kind  paintKind
	color scene.Color // valid only for paintSolid
}

func resolvePaint(mat *scene.Material) paint {
	if mat != nil && mat.Texture != nil {
		return paint{kind: paintTexture}
	}
	if mat != nil && mat.BaseColor != nil {
		return paint{kind: paintSolid, color: *mat.BaseColor}
	}
	return paint{kind: paintDefault}
}

// Convert turns a scene into a picoCAD model document. name becomes
// the logical file name in the header. The returned warnings describe
// recoverable fallbacks (oversized texture, unresolvable material
// color); they are populated even when conversion succeeds.
//
// The whole document is built before anything is returned, so a
// non-nil error means no partial output exists at all.
func Convert(s *scene.Scene, name string) (string, []string, error) {
	if len(s.Objects) == 0 {
		return "", nil, ErrEmptyScene
	}
	if err := validate(s); err != nil {
		return "", nil, err
	}

	c := &converter{quant: NewQuantizer()}
	doc := c.document(s, name)
	return doc, c.warnings, nil
}

// Export converts the scene and writes the document to w in one piece.
func Export(s *scene.Scene, name string, w io.Writer) ([]string, error) {
	doc, warnings, err := Convert(s, name)
	if err != nil {
		return warnings, err
	}
	if _, err := io.WriteString(w, doc); err != nil {
		return warnings, fmt.Errorf("failed to write document: %w", err)
	}
	return warnings, nil
}

// validate applies the structural checks up front: faces need at least
// 3 vertices and UV data has to match its face's vertex count. Mesh
// topology beyond that is the host's problem.
func validate(s *scene.Scene) error {
	for _, obj := range s.Objects {
		for i, f := range obj.Faces {
			if len(f.Indices) < 3 {
				return &MalformedGeometryError{
					Object: obj.Name, Face: i,
					Reason: fmt.Sprintf("face has %d vertex indices, need at least 3", len(f.Indices)),
				}
			}
			if f.UVs != nil && len(f.UVs) != len(f.Indices) {
				return &MalformedGeometryError{
					Object: obj.Name, Face: i,
					Reason: fmt.Sprintf("face has %d uvs for %d vertices", len(f.UVs), len(f.Indices)),
				}
			}
		}
	}
	return nil
}

type converter struct {
	quant    *Quantizer
	warnings []string
}

func (c *converter) warnf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// sharedTexture picks the texture for the export's single texture
// slot: the first one discovered across materials in object order.
// An inadmissible first texture disqualifies texturing for the whole
// export rather than falling through to a later one.
func (c *converter) sharedTexture(s *scene.Scene) *scene.Texture {
	for _, obj := range s.Objects {
		if obj.Material == nil || obj.Material.Texture == nil {
			continue
		}
		tex := obj.Material.Texture
		if !Admissible(tex) {
			c.warnf("image texture on object %q is %dx%d, must be 128x128 or smaller; ignoring texture export",
				obj.Name, tex.Width, tex.Height)
			return nil
		}
		return tex
	}
	return nil
}

func (c *converter) document(s *scene.Scene, name string) string {
	tex := c.sharedTexture(s)

	// UV coordinates are in divisions of 8 pixels, so the scale
	// depends on the texture size. Without a texture the full
	// 128x128 sheet is assumed.
	texW, texH := TextureSize, TextureSize
	if tex != nil {
		texW, texH = tex.Width, tex.Height
	}

	var b strings.Builder

	// Header: format name, file name, zoom, background, alpha.
	bg := c.quant.Quantize(s.Background).Index
	fmt.Fprintf(&b, "picocad;%s;%d;%d;%d\n", SanitizeName(name), zoomLevel, bg, alphaColor)

	blocks := make([]string, 0, len(s.Objects))
	for i := range s.Objects {
		blocks = append(blocks, c.objectBlock(&s.Objects[i], texW, texH))
	}
	b.WriteString("{\n")
	b.WriteString(strings.Join(blocks, ",\n"))
	b.WriteString("\n}%\n")

	b.WriteString(c.textureBlock(tex))

	return b.String()
}

func (c *converter) objectBlock(obj *scene.MeshObject, texW, texH int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "{\n name='%s', pos={%.1f,%.1f,%.1f}, rot={0,0,0},\n",
		SanitizeName(obj.Name), obj.Position.X, obj.Position.Y, obj.Position.Z)

	// Vertices, with rotation and scale baked in.
	lines := make([]string, 0, len(obj.Vertices))
	for _, v := range obj.Vertices {
		baked := BakeVertex(v, obj.Rotation, obj.Scale)
		lines = append(lines, fmt.Sprintf("  {%.1f,%.1f,%.1f}", baked.X, baked.Y, baked.Z))
	}
	b.WriteString(" v={\n")
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n },\n")

	doubleSided := true
	if obj.Material != nil {
		doubleSided = obj.Material.DoubleSided
	}
	colorIndex := c.meshColor(obj)

	lines = lines[:0]
	for i := range obj.Faces {
		lines = append(lines, c.faceRecord(&obj.Faces[i], doubleSided, colorIndex, texW, texH))
	}
	b.WriteString(" f={\n")
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n }\n}")

	return b.String()
}

// meshColor resolves the solid color field for all of an object's
// faces. A texture-driven material keeps the default: the texture
// supplies the face colors, the c field is just picoCAD's untextured
// fallback.
func (c *converter) meshColor(obj *scene.MeshObject) int {
	p := resolvePaint(obj.Material)
	switch p.kind {
	case paintSolid:
		return c.quant.Quantize(p.color).Index
	case paintDefault:
		if obj.Material != nil {
			c.warnf("material on object %q has no texture or base color; using default mesh color", obj.Name)
		}
	}
	return DefaultColorIndex
}

func (c *converter) faceRecord(f *scene.Face, doubleSided bool, colorIndex, texW, texH int) string {
	indices := make([]string, 0, len(f.Indices))
	for _, idx := range f.Indices {
		indices = append(indices, strconv.Itoa(idx+1))
	}

	var b strings.Builder
	b.WriteString("  {")
	b.WriteString(strings.Join(indices, ","))
	b.WriteString(", ")
	if doubleSided {
		b.WriteString("dbl=1, ")
	}
	fmt.Fprintf(&b, "c=%d, ", colorIndex)

	coords := make([]string, 0, len(f.Indices))
	if len(f.UVs) > 0 {
		// One UV unit in the output equals one 8x8 texel tile.
		for _, uv := range f.UVs {
			coords = append(coords, fmt.Sprintf("%.1f,%.1f",
				uv.U*float64(texW)/8, uv.V*float64(texH)/8))
		}
	} else {
		for range f.Indices {
			coords = append(coords, "0,0")
		}
	}
	b.WriteString("uv={")
	b.WriteString(strings.Join(coords, ","))
	b.WriteString("} }")

	return b.String()
}

func (c *converter) textureBlock(tex *scene.Texture) string {
	if tex == nil {
		return DefaultTexture
	}
	rows, err := EncodeTexture(c.quant, tex)
	if err != nil {
		// Admissible but smaller than the grid: the fixed 128-wide
		// rows would misalign, so fall back rather than guess.
		c.warnf("image texture is %dx%d, must be exactly 128x128 to encode; using default texture",
			tex.Width, tex.Height)
		return DefaultTexture
	}
	return strings.Join(rows, "\n")
}

// nameCleaner decomposes accented characters and strips the combining
// marks, so e.g. "café" survives as "cafe" instead of "caf_".
var nameCleaner = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeName makes a string safe for the document's quoted name
// fields and the header's semicolon-separated name field.
func SanitizeName(s string) string {
	if clean, _, err := transform.String(nameCleaner, s); err == nil {
		s = clean
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '-', r == '.', r == ' ':
			return r
		}
		return '_'
	}, s)
	if s == "" {
		return "untitled"
	}
	return s
}
