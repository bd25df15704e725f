package cube

import (
	"strings"

	"github.com/santa23kit/solver/internal/xerr"
)

// Formula is a named sequence of moves, applied either by literal move
// replay or, when precomputed, via a facelet-change map that touches
// only the facelets the formula actually moves. Both paths must agree;
// ComputeFaceletChanges is what builds the map from the moves.
type Formula struct {
	Moves   []Move
	Changes []FaceletChange // nil until Precompute is called
}

// NewFormula builds a Formula from its move list, without a
// facelet-change map.
func NewFormula(moves []Move) *Formula {
	return &Formula{Moves: append([]Move(nil), moves...)}
}

// HasFaceletChanges reports whether Precompute has been run.
func (f *Formula) HasFaceletChanges() bool { return f.Changes != nil }

// Precompute derives and stores f's facelet-change map for a cube of
// the given order.
func (f *Formula) Precompute(order int) {
	f.Changes = ComputeFaceletChanges(order, f.Moves)
}

// Cost is the number of moves in the formula.
func (f *Formula) Cost() int { return len(f.Moves) }

// NumChanges is the number of facelets the formula's map touches. Valid
// only once Precompute has run.
func (f *Formula) NumChanges() int { return len(f.Changes) }

// Inverse returns the formula that undoes f, in reverse move order.
func (f *Formula) Inverse() *Formula {
	inv := make([]Move, len(f.Moves))
	for i, m := range f.Moves {
		inv[len(f.Moves)-1-i] = m.Inverse()
	}
	return NewFormula(inv)
}

// String renders the formula in dot-joined move-text syntax, e.g.
// "f1.d0.-r0.-f1".
func (f *Formula) String() string {
	parts := make([]string, len(f.Moves))
	for i, m := range f.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ".")
}

// ParseFormula parses a dot-joined move-text line into a Formula with no
// facelet-change map.
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

// Conjugate returns g * f * g^-1: apply g, then f, then undo g. This is
// the standard augmentation that lets a formula discovered at one
// position be reused at another reachable by g.
func (f *Formula) Conjugate(g *Formula) *Formula {
	moves := make([]Move, 0, len(g.Moves)*2+len(f.Moves))
	moves = append(moves, g.Moves...)
	moves = append(moves, f.Moves...)
	gInv := g.Inverse()
	moves = append(moves, gInv.Moves...)
	return NewFormula(moves)
}

// RotateAxes returns a formula equivalent to f but with every move's
// axis permuted by perm (a permutation of {AxisF, AxisD, AxisR} encoded
// as axis->axis), used to generate symmetry-augmented variants of a
// searched formula ("axis relabeling").
func (f *Formula) RotateAxes(perm map[Axis]Axis) *Formula {
	moves := make([]Move, len(f.Moves))
	for i, m := range f.Moves {
		moves[i] = Move{Axis: perm[m.Axis], CW: m.CW, Depth: m.Depth}
	}
	return NewFormula(moves)
}
