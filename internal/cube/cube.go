package cube

import (
	"fmt"
	"strings"

	"github.com/santa23kit/solver/internal/xerr"
)

// Face indices, in the fixed order the rotation routines below depend
// on. D1 and D0 are the two faces perpendicular to the D axis, F0/F1
// perpendicular to F, R0/R1 perpendicular to R; the "0" face sits at
// depth 0 and the "1" face at depth order-1 along its axis.
const (
	D1 = iota
	F0
	R0
	F1
	R1
	D0
)

var faceNames = [6]string{"D1", "F0", "R0", "F1", "R1", "D0"}

// Cube is an order x order x order twisty puzzle's facelet state: six
// Faces, one per side, indexed by the D1/F0/R0/F1/R1/D0 constants.
type Cube struct {
	Order   int
	Palette Palette
	Faces   [6]*Face[Color]
}

// NewCube allocates a cube of the given order and palette, solved
// (every face filled with its own color class).
func NewCube(order int, p Palette) *Cube {
	c := &Cube{Order: order, Palette: p}
	for i := range c.Faces {
		c.Faces[i] = NewFace[Color](order)
	}
	c.Reset()
	return c
}

// Reset fills the cube back to its solved state for its palette.
func (c *Cube) Reset() {
	n := c.Order
	for face := 0; face < 6; face++ {
		switch c.Palette {
		case PaletteNormal:
			c.Faces[face].Fill(NewNormalColor(face))
		case PaletteRainbow:
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					c.Faces[face].Set(y, x, NewRainbowColor(face, rainbowQuadrant(n, y, x)))
				}
			}
		default:
			panic(fmt.Sprintf("cube: NewCube does not support palette %d directly, use NewEdgeCube", c.Palette))
		}
	}
}

// rainbowQuadrant maps a facelet's coordinate on an order-n face to one
// of 4 quadrant ids, used to assign distinguishable rainbow colors
// within a face class so whole-face symmetries (e.g. a face rotated 180
// in place) are detectable.
func rainbowQuadrant(n, y, x int) int {
	half := n / 2
	top := y < half || (n%2 == 1 && y == half && y*2 < n)
	left := x < half || (n%2 == 1 && x == half && x*2 < n)
	switch {
	case top && left:
		return 0
	case top && !left:
		return 1
	case !top && left:
		return 2
	default:
		return 3
	}
}

// Clone returns a deep, independent copy of c.
func (c *Cube) Clone() *Cube {
	cp := &Cube{Order: c.Order, Palette: c.Palette}
	for i := range c.Faces {
		cp.Faces[i] = c.Faces[i].Clone()
	}
	return cp
}

// CopyFrom overwrites c's facelets from src, which must share c's order.
func (c *Cube) CopyFrom(src *Cube) {
	for i := range c.Faces {
		c.Faces[i].CopyFrom(src.Faces[i])
	}
}

// Get reads the facelet at (face, y, x).
func (c *Cube) Get(face, y, x int) Color { return c.Faces[face].Get(y, x) }

// Set writes the facelet at (face, y, x).
func (c *Cube) Set(face, y, x int, col Color) { c.Faces[face].Set(y, x, col) }

// GetAt reads the facelet at p.
func (c *Cube) GetAt(p FaceletPosition) Color { return c.Get(p.Face, p.Y, p.X) }

// SetAt writes the facelet at p.
func (c *Cube) SetAt(p FaceletPosition, col Color) { c.Set(p.Face, p.Y, p.X, col) }

// Rotate applies a single move's slice turn to the cube in place. The
// algorithm cycles four border strips across four adjacent faces and,
// when the move's depth is extremal, also spins the corresponding face
// in place via its O(1) cached-orientation rotation.
func (c *Cube) Rotate(m Move) {
	n := c.Order
	d := m.Depth
	faces := c.Faces
	switch m.Axis {
	case AxisF:
		if m.CW {
			if d == 0 {
				faces[F0].RotateCW()
			} else if d == n-1 {
				for k := 0; k < 3; k++ {
					faces[F1].RotateCW()
				}
			}
			for i := 0; i < n; i++ {
				tmp := faces[R1].Get(n-1-i, n-1-d)
				faces[R1].Set(n-1-i, n-1-d, faces[D0].Get(d, n-1-i))
				faces[D0].Set(d, n-1-i, faces[R0].Get(i, d))
				faces[R0].Set(i, d, faces[D1].Get(n-1-d, i))
				faces[D1].Set(n-1-d, i, tmp)
			}
		} else {
			if d == 0 {
				for k := 0; k < 3; k++ {
					faces[F0].RotateCW()
				}
			} else if d == n-1 {
				faces[F1].RotateCW()
			}
			for i := 0; i < n; i++ {
				tmp := faces[D1].Get(n-1-d, i)
				faces[D1].Set(n-1-d, i, faces[R0].Get(i, d))
				faces[R0].Set(i, d, faces[D0].Get(d, n-1-i))
				faces[D0].Set(d, n-1-i, faces[R1].Get(n-1-i, n-1-d))
				faces[R1].Set(n-1-i, n-1-d, tmp)
			}
		}
	case AxisD:
		if m.CW {
			if d == 0 {
				faces[D0].RotateCW()
			} else if d == n-1 {
				for k := 0; k < 3; k++ {
					faces[D1].RotateCW()
				}
			}
			for i := 0; i < n; i++ {
				tmp := faces[R1].Get(n-1-d, i)
				faces[R1].Set(n-1-d, i, faces[F1].Get(n-1-d, i))
				faces[F1].Set(n-1-d, i, faces[R0].Get(n-1-d, i))
				faces[R0].Set(n-1-d, i, faces[F0].Get(n-1-d, i))
				faces[F0].Set(n-1-d, i, tmp)
			}
		} else {
			if d == 0 {
				for k := 0; k < 3; k++ {
					faces[D0].RotateCW()
				}
			} else if d == n-1 {
				faces[D1].RotateCW()
			}
			for i := 0; i < n; i++ {
				tmp := faces[F0].Get(n-1-d, i)
				faces[F0].Set(n-1-d, i, faces[R0].Get(n-1-d, i))
				faces[R0].Set(n-1-d, i, faces[F1].Get(n-1-d, i))
				faces[F1].Set(n-1-d, i, faces[R1].Get(n-1-d, i))
				faces[R1].Set(n-1-d, i, tmp)
			}
		}
	case AxisR:
		if m.CW {
			if d == 0 {
				faces[R0].RotateCW()
			} else if d == n-1 {
				for k := 0; k < 3; k++ {
					faces[R1].RotateCW()
				}
			}
			for i := 0; i < n; i++ {
				tmp := faces[F0].Get(n-1-i, n-1-d)
				faces[F0].Set(n-1-i, n-1-d, faces[D0].Get(n-1-i, n-1-d))
				faces[D0].Set(n-1-i, n-1-d, faces[F1].Get(i, d))
				faces[F1].Set(i, d, faces[D1].Get(n-1-i, n-1-d))
				faces[D1].Set(n-1-i, n-1-d, tmp)
			}
		} else {
			if d == 0 {
				for k := 0; k < 3; k++ {
					faces[R0].RotateCW()
				}
			} else if d == n-1 {
				faces[R1].RotateCW()
			}
			for i := 0; i < n; i++ {
				tmp := faces[D1].Get(n-1-i, n-1-d)
				faces[D1].Set(n-1-i, n-1-d, faces[F1].Get(i, d))
				faces[F1].Set(i, d, faces[D0].Get(n-1-i, n-1-d))
				faces[D0].Set(n-1-i, n-1-d, faces[F0].Get(n-1-i, n-1-d))
				faces[F0].Set(n-1-i, n-1-d, tmp)
			}
		}
	default:
		panic(fmt.Sprintf("cube: unknown axis %d", m.Axis))
	}
}

// RotateMoves applies a sequence of moves in order.
func (c *Cube) RotateMoves(moves []Move) {
	for _, m := range moves {
		c.Rotate(m)
	}
}

// RotateFormula applies a formula, preferring its facelet-change map
// when present (O(len(map))) and falling back to literal move replay
// (O(len(moves) * order)) otherwise.
func (c *Cube) RotateFormula(f *Formula) {
	if f.HasFaceletChanges() {
		c.applyFaceletChanges(f.Changes)
		return
	}
	c.RotateMoves(f.Moves)
}

// applyFaceletChanges performs the gather-then-scatter application of a
// precomputed facelet-change map: every source value is read before any
// destination is written, so overlapping from/to ranges (as happen on
// any nontrivial cube move) are handled correctly.
func (c *Cube) applyFaceletChanges(changes []FaceletChange) {
	gathered := make([]Color, len(changes))
	for i, ch := range changes {
		gathered[i] = c.GetAt(ch.From)
	}
	for i, ch := range changes {
		c.SetAt(ch.To, gathered[i])
	}
}

// Equal reports whether c and other hold identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	if c.Order != other.Order {
		return false
	}
	for i := range c.Faces {
		if !c.Faces[i].Equal(other.Faces[i]) {
			return false
		}
	}
	return true
}

// ComputeFaceDiff counts interior (non-border) facelets that differ
// between c and other. This is a cheap generic distance measure; the
// solver's actual scoring functions (FaceCube.ComputeFaceScore,
// EdgeCube.EdgeScore) are weighted and palette-aware.
func (c *Cube) ComputeFaceDiff(other *Cube) int {
	n := c.Order
	diff := 0
	for face := 0; face < 6; face++ {
		for y := 1; y < n-1; y++ {
			for x := 1; x < n-1; x++ {
				if c.Get(face, y, x) != other.Get(face, y, x) {
					diff++
				}
			}
		}
	}
	return diff
}

// ClassesMatch reports whether c and target have the same color class
// (6-way) at every interior facelet (rows and columns 1..n-2 of each
// face; border facelets are not compared), which is the "normal"
// validity check a formula must satisfy to be a legal 6-color operation
// regardless of the palette it was discovered in.
func (c *Cube) ClassesMatch(target *Cube) bool {
	n := c.Order
	for face := 0; face < 6; face++ {
		for y := 1; y < n-1; y++ {
			for x := 1; x < n-1; x++ {
				if c.Get(face, y, x).ColorClass(c.Palette) != target.Get(face, y, x).ColorClass(target.Palette) {
					return false
				}
			}
		}
	}
	return true
}

// ReadKaggleColoring fills every facelet of c, in canonical scan order
// (face D1,F0,R0,F1,R1,D0, each face row-major y then x), from colors,
// which must map 1:1 with this cube's order/palette (len(colors) ==
// 6*order*order).
func (c *Cube) ReadKaggleColoring(colors []Color) error {
	n := c.Order
	want := 6 * n * n
	if len(colors) != want {
		return fmt.Errorf("%w: expected %d facelets, got %d", xerr.InvalidInput, want, len(colors))
	}
	i := 0
	for face := 0; face < 6; face++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				c.Set(face, y, x, colors[i])
				i++
			}
		}
	}
	return nil
}

// WriteKaggleColoring is the inverse of ReadKaggleColoring.
func (c *Cube) WriteKaggleColoring() []Color {
	n := c.Order
	out := make([]Color, 0, 6*n*n)
	for face := 0; face < 6; face++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				out = append(out, c.Get(face, y, x))
			}
		}
	}
	return out
}

// Display renders the cube as an ASCII unfolded-cube diagram: D1 on
// top, the F0/R0/F1/R1 belt in the middle, D0 on the bottom. Each
// facelet prints via its Color.String().
func (c *Cube) Display() string {
	n := c.Order
	var sb strings.Builder
	pad := strings.Repeat("   ", n)
	for y := 0; y < n; y++ {
		sb.WriteString(pad)
		for x := 0; x < n; x++ {
			fmt.Fprintf(&sb, "%2s ", c.Get(D1, y, x))
		}
		sb.WriteByte('\n')
	}
	for y := 0; y < n; y++ {
		for _, face := range [4]int{R1, F0, R0, F1} {
			for x := 0; x < n; x++ {
				fmt.Fprintf(&sb, "%2s ", c.Get(face, y, x))
			}
		}
		sb.WriteByte('\n')
	}
	for y := 0; y < n; y++ {
		sb.WriteString(pad)
		for x := 0; x < n; x++ {
			fmt.Fprintf(&sb, "%2s ", c.Get(D0, y, x))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func faceName(i int) string { return faceNames[i] }
