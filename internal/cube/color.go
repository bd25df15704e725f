package cube

import "fmt"

// Palette identifies how many distinct colors a cube's facelets are
// drawn from. The face-turn kernel in this package is palette-agnostic;
// only Color values move, the Cube/Face machinery never branches on
// Palette directly.
type Palette int

const (
	// PaletteNormal is the 6-color palette: one color per face.
	PaletteNormal Palette = 6
	// PaletteRainbow is the 24-color palette: one color per facelet
	// position on a solved cube (6 faces * 4 positions per face, see
	// ColorClass), used to detect whole-cube symmetries a 6-color
	// comparison would miss.
	PaletteRainbow Palette = 24
	// PaletteEdge is the 48-color palette used by EdgeCube: two colors
	// per edge strip half (6 faces * 4 edges * 2 halves).
	PaletteEdge Palette = 48
)

// Color is a single facelet color. Its meaning depends on the Palette
// in use; for PaletteNormal values are ColorClass-compatible indices
// 0..5 directly, for PaletteRainbow and PaletteEdge the value encodes
// additional positional information recoverable with ColorClass.
type Color uint8

// ColorClass maps any palette's color value back to its underlying
// 6-class ("which face was this facelet originally part of") identity.
// For PaletteNormal this is the identity function over 0..5; rainbow
// and edge colors encode the class in their high bits.
func (c Color) ColorClass(p Palette) Color {
	switch p {
	case PaletteNormal:
		return c
	case PaletteRainbow:
		return c / 4
	case PaletteEdge:
		return c / 8
	default:
		panic(fmt.Sprintf("cube: unknown palette %d", p))
	}
}

var classNames = [6]string{"D", "F", "R", "f", "r", "d"}

// String renders a color as the single letter classNames[c%6]. Under
// PaletteNormal that letter is the color's face class; no suffix is
// printed for the larger palettes, so distinct rainbow colors can render
// alike.
func (c Color) String() string {
	class := c % 6
	return classNames[class]
}

// NewNormalColor builds a PaletteNormal color for face index f (0..5).
func NewNormalColor(face int) Color {
	return Color(face)
}

// NewRainbowColor builds a PaletteRainbow color for face index f (0..5)
// and sub-position p (0..3), the position being the facelet's index
// within the reference 2x2 quadrant assignment described in GLOSSARY.
func NewRainbowColor(face, p int) Color {
	return Color(face*4 + p)
}

// NewEdgeColor builds a PaletteEdge color for face index f (0..5), edge
// index e (0..3) and half h (0 or 1).
func NewEdgeColor(face, edge, half int) Color {
	return Color(face*8 + edge*2 + half)
}
