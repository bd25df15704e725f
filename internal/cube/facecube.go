package cube

// FaceCube is an alternate view over the same logical cube, specialized
// for face-monochromaticity scoring: it keeps only the interior
// (non-border) cells of each face, where "interior" is relative to the
// face's own border, i.e. rows/cols 1..order-2.
type FaceCube struct {
	Order   int
	Palette Palette
	Cells   [6][][]Color // Cells[face][y-1][x-1] for y,x in 1..order-2
}

// NewFaceCubeFromCube extracts the interior cells of c into a FaceCube.
func NewFaceCubeFromCube(c *Cube) *FaceCube {
	n := c.Order
	fc := &FaceCube{Order: n, Palette: c.Palette}
	for face := 0; face < 6; face++ {
		rows := make([][]Color, n-2)
		for y := 1; y < n-1; y++ {
			row := make([]Color, n-2)
			for x := 1; x < n-1; x++ {
				row[x-1] = c.Get(face, y, x)
			}
			rows[y-1] = row
		}
		fc.Cells[face] = rows
	}
	return fc
}

// Clone returns a deep copy of fc.
func (fc *FaceCube) Clone() *FaceCube {
	cp := &FaceCube{Order: fc.Order, Palette: fc.Palette}
	for face := 0; face < 6; face++ {
		rows := make([][]Color, len(fc.Cells[face]))
		for i, row := range fc.Cells[face] {
			rows[i] = append([]Color(nil), row...)
		}
		cp.Cells[face] = rows
	}
	return cp
}

// ComputeFaceScore counts interior cells that disagree with target,
// facelet for facelet, weighting the single center cell 100x when
// order is odd (the center facelet stays in place under every face
// turn and moves only with the middle slice, so getting it wrong is disproportionately
// expensive to correct later; this matches the reference solver's
// FaceCube::ComputeFaceScore).
func (fc *FaceCube) ComputeFaceScore(target *FaceCube) int {
	n := fc.Order
	score := 0
	for face := 0; face < 6; face++ {
		for y := 1; y < n-1; y++ {
			for x := 1; x < n-1; x++ {
				coef := 1
				if n%2 == 1 && x == n/2 && y == n/2 {
					coef = 100
				}
				if fc.Cells[face][y-1][x-1] != target.Cells[face][y-1][x-1] {
					score += coef
				}
			}
		}
	}
	return score
}
