package wreath

import (
	"fmt"
	"strings"

	"github.com/santa23kit/solver/internal/xerr"
)

// Ring selects which of the two rings a move rotates.
type Ring uint8

const (
	RingA Ring = iota
	RingB
)

// Move rotates one ring by one step, in the direction fixed by the
// reference solver's Move::MoveType::{A,Ap,B,Bp} (text syntax "l",
// "-l", "r", "-r").
type Move struct {
	Ring    Ring
	Reverse bool // Ap/Bp when true
}

func (m Move) String() string {
	switch {
	case m.Ring == RingA && !m.Reverse:
		return "l"
	case m.Ring == RingA && m.Reverse:
		return "-l"
	case m.Ring == RingB && !m.Reverse:
		return "r"
	default:
		return "-r"
	}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move { return Move{Ring: m.Ring, Reverse: !m.Reverse} }

// ParseMove parses a single "l", "-l", "r", or "-r" token.
func ParseMove(s string) (Move, error) {
	switch s {
	case "l":
		return Move{Ring: RingA}, nil
	case "-l":
		return Move{Ring: RingA, Reverse: true}, nil
	case "r":
		return Move{Ring: RingB}, nil
	case "-r":
		return Move{Ring: RingB, Reverse: true}, nil
	default:
		return Move{}, fmt.Errorf("%w: unknown wreath move %q", xerr.InvalidInput, s)
	}
}

func shiftRight(s []bool) {
	for i := 0; i < len(s)-1; i++ {
		s[i] = s[i+1]
	}
}

func shiftLeft(s []bool) {
	for i := len(s) - 1; i > 0; i-- {
		s[i] = s[i-1]
	}
}

// Rotate applies a single move in place, mirroring the reference
// Wreath::Rotate bit-for-bit: it shifts the affected ring's inside and
// outside arcs through the two intersection slots, and walks the two C
// token positions through the same transition.
func (w *Wreath) Rotate(m Move) {
	switch {
	case m.Ring == RingA && !m.Reverse: // "l"
		tmp := w.Intersections[0]
		w.Intersections[0] = at(w.InsideA, 0)
		shiftRight(w.InsideA)
		setLast(w.InsideA, w.Intersections[1])
		w.Intersections[1] = at(w.OutsideA, 0)
		shiftRight(w.OutsideA)
		setLast(w.OutsideA, tmp)
		for i := range w.C {
			w.C[i] = transitionA(w.C[i], len(w.InsideA), len(w.OutsideA))
		}
	case m.Ring == RingA && m.Reverse: // "-l"
		tmp := w.Intersections[1]
		w.Intersections[1] = last(w.InsideA)
		shiftLeft(w.InsideA)
		w.InsideA[0] = w.Intersections[0]
		w.Intersections[0] = last(w.OutsideA)
		shiftLeft(w.OutsideA)
		w.OutsideA[0] = tmp
		for i := range w.C {
			w.C[i] = transitionAInv(w.C[i], len(w.InsideA), len(w.OutsideA))
		}
	case m.Ring == RingB && !m.Reverse: // "r"
		tmp := w.Intersections[0]
		w.Intersections[0] = at(w.OutsideB, 0)
		shiftRight(w.OutsideB)
		setLast(w.OutsideB, w.Intersections[1])
		w.Intersections[1] = at(w.InsideB, 0)
		shiftRight(w.InsideB)
		setLast(w.InsideB, tmp)
		for i := range w.C {
			w.C[i] = transitionB(w.C[i], len(w.InsideB), len(w.OutsideB))
		}
	default: // "-r"
		tmp := w.Intersections[1]
		w.Intersections[1] = last(w.OutsideB)
		shiftLeft(w.OutsideB)
		w.OutsideB[0] = w.Intersections[0]
		w.Intersections[0] = last(w.InsideB)
		shiftLeft(w.InsideB)
		w.InsideB[0] = tmp
		for i := range w.C {
			w.C[i] = transitionBInv(w.C[i], len(w.InsideB), len(w.OutsideB))
		}
	}
}

func at(s []bool, i int) bool  { return s[i] }
func last(s []bool) bool       { return s[len(s)-1] }
func setLast(s []bool, v bool) { s[len(s)-1] = v }

func transitionA(p Position, insideSize, outsideSize int) Position {
	switch p.Arc {
	case ArcAInside:
		if p.Index == 0 {
			return Position{Arc: ArcIntersection, Index: 0}
		}
		return Position{Arc: ArcAInside, Index: p.Index - 1}
	case ArcAOutside:
		if p.Index == 0 {
			return Position{Arc: ArcIntersection, Index: 1}
		}
		return Position{Arc: ArcAOutside, Index: p.Index - 1}
	case ArcIntersection:
		if p.Index == 0 {
			return Position{Arc: ArcAOutside, Index: outsideSize - 1}
		}
		return Position{Arc: ArcAInside, Index: insideSize - 1}
	default:
		return p
	}
}

func transitionAInv(p Position, insideSize, outsideSize int) Position {
	switch p.Arc {
	case ArcAInside:
		if p.Index == insideSize-1 {
			return Position{Arc: ArcIntersection, Index: 1}
		}
		return Position{Arc: ArcAInside, Index: p.Index + 1}
	case ArcAOutside:
		if p.Index == outsideSize-1 {
			return Position{Arc: ArcIntersection, Index: 0}
		}
		return Position{Arc: ArcAOutside, Index: p.Index + 1}
	case ArcIntersection:
		if p.Index == 0 {
			return Position{Arc: ArcAInside, Index: 0}
		}
		return Position{Arc: ArcAOutside, Index: 0}
	default:
		return p
	}
}

func transitionB(p Position, insideSize, outsideSize int) Position {
	switch p.Arc {
	case ArcBInside:
		if p.Index == 0 {
			return Position{Arc: ArcIntersection, Index: 1}
		}
		return Position{Arc: ArcBInside, Index: p.Index - 1}
	case ArcBOutside:
		if p.Index == 0 {
			return Position{Arc: ArcIntersection, Index: 0}
		}
		return Position{Arc: ArcBOutside, Index: p.Index - 1}
	case ArcIntersection:
		if p.Index == 0 {
			return Position{Arc: ArcBInside, Index: insideSize - 1}
		}
		return Position{Arc: ArcBOutside, Index: outsideSize - 1}
	default:
		return p
	}
}

func transitionBInv(p Position, insideSize, outsideSize int) Position {
	switch p.Arc {
	case ArcBInside:
		if p.Index == insideSize-1 {
			return Position{Arc: ArcIntersection, Index: 0}
		}
		return Position{Arc: ArcBInside, Index: p.Index + 1}
	case ArcBOutside:
		if p.Index == outsideSize-1 {
			return Position{Arc: ArcIntersection, Index: 1}
		}
		return Position{Arc: ArcBOutside, Index: p.Index + 1}
	case ArcIntersection:
		if p.Index == 0 {
			return Position{Arc: ArcBOutside, Index: 0}
		}
		return Position{Arc: ArcBInside, Index: 0}
	default:
		return p
	}
}

// Formula is a finite sequence of wreath moves.
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

// ParseFormula parses a dot-joined move list, e.g. "l.r.-l.-r".
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

// Apply applies every move of f to w in order.
func (w *Wreath) Apply(f *Formula) {
	for _, m := range f.Moves {
		w.Rotate(m)
	}
}
