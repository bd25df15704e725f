package cube

// EdgeCube is an alternate storage layout over the same logical cube,
// specialized for edge-alignment scoring: it keeps only the
// non-corner, non-center border cells of each face (the 4 edge strips,
// order-2 cells each) and drops the interior entirely, mirroring the
// reference solution's EdgeCube which never needs interior facelets to
// score edge matching.
type EdgeCube struct {
	Order   int
	Palette Palette
	// Edges[face][edge] is a strip of order-2 colors, indexed outward
	// along that edge. Edge order per face is top, right, bottom, left
	// (see edgeCoord).
	Edges [6][4][]Color
}

// edgeCoord returns the (y, x) of the i-th cell (0..order-3) of face's
// edge-th border strip (0=top, 1=right, 2=bottom, 3=left), excluding
// corners.
func edgeCoord(order, edge, i int) (y, x int) {
	switch edge {
	case 0:
		return 0, i + 1
	case 1:
		return i + 1, order - 1
	case 2:
		return order - 1, i + 1
	default:
		return i + 1, 0
	}
}

// NewEdgeCubeFromCube extracts the border (non-corner) facelets of c
// into an EdgeCube, copying c's actual colors and palette verbatim; it
// performs no recoloring, so EdgeScore below reasons about the same
// class structure as the source cube.
func NewEdgeCubeFromCube(c *Cube) *EdgeCube {
	n := c.Order
	ec := &EdgeCube{Order: n, Palette: c.Palette}
	for face := 0; face < 6; face++ {
		for edge := 0; edge < 4; edge++ {
			strip := make([]Color, n-2)
			for i := range strip {
				y, x := edgeCoord(n, edge, i)
				strip[i] = c.Get(face, y, x)
			}
			ec.Edges[face][edge] = strip
		}
	}
	return ec
}

// Clone returns a deep copy of ec.
func (ec *EdgeCube) Clone() *EdgeCube {
	cp := &EdgeCube{Order: ec.Order, Palette: ec.Palette}
	for face := 0; face < 6; face++ {
		for edge := 0; edge < 4; edge++ {
			cp.Edges[face][edge] = append([]Color(nil), ec.Edges[face][edge]...)
		}
	}
	return cp
}

// EdgeScore counts, for every edge strip, the cells whose color class
// disagrees with the strip's own center cell's class. A strip is
// internally consistent (monochromatic up to the center) iff it
// contributes 0; EdgeScore() == 0 iff every strip is monochromatic
// within itself.
func (ec *EdgeCube) EdgeScore() int {
	n := ec.Order
	center := (n - 3) / 2
	score := 0
	for face := 0; face < 6; face++ {
		for edge := 0; edge < 4; edge++ {
			strip := ec.Edges[face][edge]
			if len(strip) == 0 {
				continue
			}
			centerClass := strip[center].ColorClass(ec.Palette)
			for _, c := range strip {
				if c.ColorClass(ec.Palette) != centerClass {
					score++
				}
			}
		}
	}
	return score
}

// EdgeDiff counts cells that differ between ec and other, facelet for
// facelet.
func (ec *EdgeCube) EdgeDiff(other *EdgeCube) int {
	diff := 0
	for face := 0; face < 6; face++ {
		for edge := 0; edge < 4; edge++ {
			a, b := ec.Edges[face][edge], other.Edges[face][edge]
			for i := range a {
				if a[i] != b[i] {
					diff++
				}
			}
		}
	}
	return diff
}
