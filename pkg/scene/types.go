package scene

// Input data model for a conversion run. The host (CLI, or any other
// caller) builds a Scene once; the converter only reads it.

// Vec3 is a position, scale or direction in scene space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Quat is a rotation quaternion. The zero value is not a valid
// rotation; use Identity for "no rotation".
type Quat struct {
	W, X, Y, Z float64
}

// Identity returns the identity rotation.
func Identity() Quat {
	return Quat{W: 1}
}

// Color is an RGB triple with channels in [0,1]. It is comparable, so
// it can key a map (the quantizer cache relies on this).
type Color struct {
	R, G, B float64
}

// UV is a texture coordinate pair. Coordinates are in [0,1] texture
// space; scaling into the output's tile units happens at emission.
type UV struct {
	U, V float64
}

// Face is a polygon over the owning object's vertex list.
// Indices are 0-based here; the output format is 1-based.
// UVs, when present, must have exactly one entry per index.
type Face struct {
	Indices []int
	UVs     []UV
}

// Texture is a decoded bitmap. Pixels are row-major RGBA quadruples
// with channels in [0,1], stored bottom row first (the source bitmap
// convention; the encoder flips vertically on emission).
type Texture struct {
	Width  int
	Height int
	Pixels []float64
}

// PixelColor returns the RGB of the pixel at (x, y), with y counted
// from the bottom row. Alpha is ignored.
func (t *Texture) PixelColor(x, y int) Color {
	i := (y*t.Width + x) * 4
	return Color{R: t.Pixels[i], G: t.Pixels[i+1], B: t.Pixels[i+2]}
}

// Material holds the subset of shading state the output format can
// express. BaseColor and Texture are optional; DoubleSided is the
// inverse of backface culling.
type Material struct {
	DoubleSided bool
	BaseColor   *Color
	Texture     *Texture
}

// MeshObject is one object of the scene. Rotation and Scale are baked
// into vertices on export; Position is carried through as-is.
type MeshObject struct {
	Name     string
	Position Vec3
	Rotation Quat
	Scale    Vec3
	Vertices []Vec3
	Faces    []Face
	Material *Material
}

// Scene is the root input value.
type Scene struct {
	Background Color
	Objects    []MeshObject
}
