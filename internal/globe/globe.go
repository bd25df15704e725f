// Package globe implements the spherical "globe" puzzle state kernel
// described in spec.md §3/§4.6, ported from the reference solution's
// UnitGlobe<width>/Globe<height,width> (original_source/cpp/globe.cpp):
// height/2 independent two-row bands, each rotatable on either row
// and flippable across both rows at once, with Flip on the full
// puzzle acting on every band simultaneously at a shared column.
package globe

import "fmt"

// Color is a facelet color index; a globe of height h and width w has
// 2*w colors, one per (height/2)-sized color class (spec.md §3).
type Color uint8

// UnitGlobe is one independent band: two rows of width facelets.
type UnitGlobe struct {
	Width    int
	Facelets [2][]Color
}

// NewUnitGlobe builds a solved band of the given width, partitioning
// its 2*width facelets into nColors classes of equal size.
func NewUnitGlobe(width, nColors int) *UnitGlobe {
	u := &UnitGlobe{Width: width}
	u.Facelets[0] = make([]Color, width)
	u.Facelets[1] = make([]Color, width)
	n := width * 2 / nColors
	for i := 0; i < width*2; i++ {
		c := Color(i / n)
		u.Facelets[i/width][i%width] = c
	}
	return u
}

// Clone returns an independent copy of u.
func (u *UnitGlobe) Clone() *UnitGlobe {
	cp := &UnitGlobe{Width: u.Width}
	cp.Facelets[0] = append([]Color(nil), u.Facelets[0]...)
	cp.Facelets[1] = append([]Color(nil), u.Facelets[1]...)
	return cp
}

// Equal reports structural equality of two bands of equal width.
func (u *UnitGlobe) Equal(other *UnitGlobe) bool {
	for r := 0; r < 2; r++ {
		for x := 0; x < u.Width; x++ {
			if u.Facelets[r][x] != other.Facelets[r][x] {
				return false
			}
		}
	}
	return true
}

// RotateRight cyclically shifts row depth (0 or 1) one step toward
// index 0 (the element at index 0 wraps to the end).
func (u *UnitGlobe) RotateRight(depth int) {
	row := u.Facelets[depth]
	tmp := row[0]
	copy(row, row[1:])
	row[u.Width-1] = tmp
}

// RotateLeft is the inverse of RotateRight.
func (u *UnitGlobe) RotateLeft(depth int) {
	row := u.Facelets[depth]
	tmp := row[u.Width-1]
	copy(row[1:], row[:u.Width-1])
	row[0] = tmp
}

// Flip swaps the two rows across a shared axis at the given column:
// for each offset i in [0, width/2), the cell at (0, depth+i) trades
// with the cell at (1, depth+width/2-1-i), both indices taken mod
// width. This is the single operation that moves facelets between the
// two rows of a band.
func (u *UnitGlobe) Flip(depth int) {
	half := u.Width / 2
	for i := 0; i < half; i++ {
		x0 := (depth + i) % u.Width
		x1 := (depth + half - 1 - i) % u.Width
		u.Facelets[0][x0], u.Facelets[1][x1] = u.Facelets[1][x1], u.Facelets[0][x0]
	}
}

// Hash is a cheap FNV-1a structural hash of u, used for searcher
// deduplication.
func (u *UnitGlobe) Hash() uint64 {
	h := uint64(0xcbf29ce484222325)
	for r := 0; r < 2; r++ {
		for _, c := range u.Facelets[r] {
			h ^= uint64(c)
			h *= 0x100000001b3
		}
	}
	return h
}

// Globe is a full puzzle: height/2 independent UnitGlobe bands,
// stacked from the globe's "north pole" band to its "south pole" band.
type Globe struct {
	Height, Width int
	Units         []*UnitGlobe
}

// New allocates a solved globe of the given height (must be even) and
// width (must be even), with nColors facelet colors.
func New(height, width, nColors int) *Globe {
	if height%2 != 0 || width%2 != 0 {
		panic(fmt.Sprintf("globe: height and width must be even, got %d x %d", height, width))
	}
	g := &Globe{Height: height, Width: width}
	g.Units = make([]*UnitGlobe, height/2)
	for i := range g.Units {
		g.Units[i] = NewUnitGlobe(width, nColors)
	}
	return g
}

// Clone returns an independent deep copy of g.
func (g *Globe) Clone() *Globe {
	cp := &Globe{Height: g.Height, Width: g.Width}
	cp.Units = make([]*UnitGlobe, len(g.Units))
	for i, u := range g.Units {
		cp.Units[i] = u.Clone()
	}
	return cp
}

// Equal reports structural equality of two globes of matching shape.
func (g *Globe) Equal(other *Globe) bool {
	for i := range g.Units {
		if !g.Units[i].Equal(other.Units[i]) {
			return false
		}
	}
	return true
}

// Hash combines every unit's Hash into one structural hash for g.
func (g *Globe) Hash() uint64 {
	h := uint64(0xcbf29ce484222325)
	for _, u := range g.Units {
		h ^= u.Hash()
		h *= 0x100000001b3
	}
	return h
}

// MismatchCount counts facelets differing from target, the globe
// solver's distance-to-target scoring function.
func (g *Globe) MismatchCount(target *Globe) int {
	score := 0
	for i, u := range g.Units {
		tu := target.Units[i]
		for r := 0; r < 2; r++ {
			for x := 0; x < u.Width; x++ {
				if u.Facelets[r][x] != tu.Facelets[r][x] {
					score++
				}
			}
		}
	}
	return score
}
