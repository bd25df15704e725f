// Package cfen implements a compact facelet-encoding format (CFEN) for
// cube states of arbitrary order and palette, generalizing the
// fixed-3x3-six-color notation of spec.md §2 to the full Normal,
// Rainbow, and Edge palettes used across the rest of the module.
package cfen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/santa23kit/solver/internal/cube"
	"github.com/santa23kit/solver/internal/xerr"
)

// State is a complete cube state in CFEN form: one run-length-encoded
// token stream per face, in D1/F0/R0/F1/R1/D0 order (cube.go's face
// constant ordering), plus the order and palette needed to interpret
// each color index.
type State struct {
	Order   int
	Palette cube.Palette
	Faces   [6][]cube.Color // row-major, length Order*Order each
}

// FromCube captures c's current state as a CFEN State.
func FromCube(c *cube.Cube) *State {
	s := &State{Order: c.Order, Palette: c.Palette}
	for f := 0; f < 6; f++ {
		cells := make([]cube.Color, 0, c.Order*c.Order)
		for y := 0; y < c.Order; y++ {
			for x := 0; x < c.Order; x++ {
				cells = append(cells, c.Get(f, y, x))
			}
		}
		s.Faces[f] = cells
	}
	return s
}

// ToCube builds a Cube from a CFEN State.
func (s *State) ToCube() *cube.Cube {
	c := cube.NewCube(s.Order, s.Palette)
	for f := 0; f < 6; f++ {
		i := 0
		for y := 0; y < s.Order; y++ {
			for x := 0; x < s.Order; x++ {
				c.Set(f, y, x, s.Faces[f][i])
				i++
			}
		}
	}
	return c
}

// String renders the CFEN text form: "<order>:<palette>|<face0>/.../<face5>",
// each face a comma-joined run-length token stream ("<color>*<count>",
// count omitted when 1).
func (s *State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d|", s.Order, int(s.Palette))
	for i, face := range s.Faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(encodeFace(face))
	}
	return sb.String()
}

func encodeFace(cells []cube.Color) string {
	if len(cells) == 0 {
		return ""
	}
	var tokens []string
	cur := cells[0]
	count := 1
	flush := func() {
		if count == 1 {
			tokens = append(tokens, strconv.Itoa(int(cur)))
		} else {
			tokens = append(tokens, fmt.Sprintf("%d*%d", cur, count))
		}
	}
	for i := 1; i < len(cells); i++ {
		if cells[i] == cur {
			count++
			continue
		}
		flush()
		cur = cells[i]
		count = 1
	}
	flush()
	return strings.Join(tokens, ",")
}

// Parse parses the CFEN text form produced by String.
func Parse(s string) (*State, error) {
	head, rest, ok := strings.Cut(s, "|")
	if !ok {
		return nil, fmt.Errorf("%w: CFEN missing '|' separator: %q", xerr.InvalidInput, s)
	}
	orderStr, paletteStr, ok := strings.Cut(head, ":")
	if !ok {
		return nil, fmt.Errorf("%w: CFEN header missing ':': %q", xerr.InvalidInput, head)
	}
	order, err := strconv.Atoi(orderStr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad CFEN order %q", xerr.InvalidInput, orderStr)
	}
	paletteN, err := strconv.Atoi(paletteStr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad CFEN palette %q", xerr.InvalidInput, paletteStr)
	}

	faceStrs := strings.Split(rest, "/")
	if len(faceStrs) != 6 {
		return nil, fmt.Errorf("%w: CFEN expected 6 faces, got %d", xerr.InvalidInput, len(faceStrs))
	}
	st := &State{Order: order, Palette: cube.Palette(paletteN)}
	for i, fs := range faceStrs {
		cells, err := decodeFace(fs, order*order)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		st.Faces[i] = cells
	}
	return st, nil
}

func decodeFace(s string, want int) ([]cube.Color, error) {
	var cells []cube.Color
	for _, tok := range strings.Split(s, ",") {
		colorStr, countStr, hasCount := strings.Cut(tok, "*")
		colorN, err := strconv.Atoi(colorStr)
		if err != nil {
			return nil, fmt.Errorf("%w: bad CFEN color token %q", xerr.InvalidInput, tok)
		}
		count := 1
		if hasCount {
			count, err = strconv.Atoi(countStr)
			if err != nil || count < 1 {
				return nil, fmt.Errorf("%w: bad CFEN run count %q", xerr.InvalidInput, tok)
			}
		}
		for i := 0; i < count; i++ {
			cells = append(cells, cube.Color(colorN))
		}
	}
	if len(cells) != want {
		return nil, fmt.Errorf("%w: CFEN face has %d cells, want %d", xerr.InvalidInput, len(cells), want)
	}
	return cells, nil
}

// Wildcard is a sentinel color value treated by Matches as matching
// any facelet, letting a CFEN state double as a wildcard-tolerant
// target pattern.
const Wildcard cube.Color = 255

// Matches reports whether c's state equals s facelet-for-facelet,
// ignoring positions where s holds Wildcard.
func (s *State) Matches(c *cube.Cube) bool {
	if c.Order != s.Order {
		return false
	}
	other := FromCube(c)
	for f := 0; f < 6; f++ {
		for i := range s.Faces[f] {
			if s.Faces[f][i] == Wildcard {
				continue
			}
			if s.Faces[f][i] != other.Faces[f][i] {
				return false
			}
		}
	}
	return true
}
