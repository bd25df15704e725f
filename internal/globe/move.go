package globe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/santa23kit/solver/internal/xerr"
)

// Kind distinguishes the three globe generators.
type Kind uint8

const (
	KindRotateRight Kind = iota
	KindRotateLeft
	KindFlip
)

// Move is one globe generator. RotateRight/RotateLeft address a single
// flattened row (unit index*2 + 0-or-1 band depth, 0 at the globe's
// first band top row, counting down through every band); Flip
// addresses a column and always acts on every band at once, matching
// the reference Globe::Rotate's unit_id<0 "flip all units" case.
type Move struct {
	Kind Kind
	Row  int // meaningful for RotateRight/RotateLeft
	Col  int // meaningful for Flip
}

func (m Move) String() string {
	switch m.Kind {
	case KindRotateRight:
		return fmt.Sprintf("r%d", m.Row)
	case KindRotateLeft:
		return fmt.Sprintf("-r%d", m.Row)
	default:
		return fmt.Sprintf("f%d", m.Col)
	}
}

// Inverse returns the move that undoes m. Flip is its own inverse.
func (m Move) Inverse() Move {
	switch m.Kind {
	case KindRotateRight:
		return Move{Kind: KindRotateLeft, Row: m.Row}
	case KindRotateLeft:
		return Move{Kind: KindRotateRight, Row: m.Row}
	default:
		return m
	}
}

// ParseMove parses "r{row}", "-r{row}", or "f{col}".
func ParseMove(s string) (Move, error) {
	switch {
	case strings.HasPrefix(s, "-r"):
		n, err := strconv.Atoi(s[2:])
		if err != nil {
			return Move{}, fmt.Errorf("%w: bad globe move %q", xerr.InvalidInput, s)
		}
		return Move{Kind: KindRotateLeft, Row: n}, nil
	case strings.HasPrefix(s, "r"):
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Move{}, fmt.Errorf("%w: bad globe move %q", xerr.InvalidInput, s)
		}
		return Move{Kind: KindRotateRight, Row: n}, nil
	case strings.HasPrefix(s, "-f"):
		// Flip is its own inverse; "-f{col}" and "f{col}" denote the
		// same generator, but both spellings are accepted since
		// conjugate-augmented formulas render inverses textually.
		n, err := strconv.Atoi(s[2:])
		if err != nil {
			return Move{}, fmt.Errorf("%w: bad globe move %q", xerr.InvalidInput, s)
		}
		return Move{Kind: KindFlip, Col: n}, nil
	case strings.HasPrefix(s, "f"):
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Move{}, fmt.Errorf("%w: bad globe move %q", xerr.InvalidInput, s)
		}
		return Move{Kind: KindFlip, Col: n}, nil
	default:
		return Move{}, fmt.Errorf("%w: unknown globe move %q", xerr.InvalidInput, s)
	}
}

// Apply applies a single move to g, dispatching row moves to the band
// and row parity the row index selects, and flip moves to every band.
func (g *Globe) Apply(m Move) {
	switch m.Kind {
	case KindRotateRight:
		unit, depth := g.rowToUnit(m.Row)
		g.Units[unit].RotateRight(depth)
	case KindRotateLeft:
		unit, depth := g.rowToUnit(m.Row)
		g.Units[unit].RotateLeft(depth)
	default:
		for _, u := range g.Units {
			u.Flip(m.Col)
		}
	}
}

// rowToUnit maps a flattened row index in [0, height) to a (unit
// index, band depth) pair: row < height/2 addresses each unit's top
// row top-to-bottom, row >= height/2 addresses each unit's bottom row
// bottom-to-top, mirroring the reference Globe::Display's north/south
// traversal order.
func (g *Globe) rowToUnit(row int) (unit, depth int) {
	half := g.Height / 2
	if row < half {
		return row, 0
	}
	return g.Height - 1 - row, 1
}

// Formula is a finite sequence of globe moves.
type Formula struct {
	Moves []Move
}

// NewFormula builds a Formula from its move list.
func NewFormula(moves []Move) *Formula { return &Formula{Moves: append([]Move(nil), moves...)} }

func (f *Formula) Cost() int { return len(f.Moves) }

func (f *Formula) String() string {
	parts := make([]string, len(f.Moves))
	for i, m := range f.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ".")
}

// Inverse returns the formula that undoes f.
func (f *Formula) Inverse() *Formula {
	inv := make([]Move, len(f.Moves))
	for i, m := range f.Moves {
		inv[len(f.Moves)-1-i] = m.Inverse()
	}
	return NewFormula(inv)
}

// ParseFormula parses a dot-joined move list, e.g. "f0.r0.-f0".
func ParseFormula(s string) (*Formula, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, xerr.InvalidInput
	}
	parts := strings.Split(s, ".")
	moves := make([]Move, len(parts))
	for i, p := range parts {
		m, err := ParseMove(p)
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return NewFormula(moves), nil
}

// ApplyFormula applies every move of f to g in order.
func (g *Globe) ApplyFormula(f *Formula) {
	for _, m := range f.Moves {
		g.Apply(m)
	}
}
