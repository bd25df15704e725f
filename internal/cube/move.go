package cube

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/santa23kit/solver/internal/xerr"
)

// Axis identifies one of the cube's three turning axes.
type Axis uint8

const (
	AxisF Axis = iota // front-back
	AxisD             // up-down
	AxisR             // left-right
)

func (a Axis) letter() byte {
	switch a {
	case AxisF:
		return 'f'
	case AxisD:
		return 'd'
	case AxisR:
		return 'r'
	default:
		panic("cube: invalid axis")
	}
}

func axisFromLetter(b byte) (Axis, bool) {
	switch b {
	case 'f':
		return AxisF, true
	case 'd':
		return AxisD, true
	case 'r':
		return AxisR, true
	default:
		return 0, false
	}
}

// Move is a single quarter turn of one slice along one axis.
type Move struct {
	Axis  Axis
	CW    bool // true: clockwise, false: counter-clockwise
	Depth int  // 0 .. order-1
}

// IsFaceRotation reports whether this move turns an entire face (an
// extremal slice) rather than an interior slice, for a cube of the
// given order.
func (m Move) IsFaceRotation(order int) bool {
	return m.Depth == 0 || m.Depth == order-1
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Axis: m.Axis, CW: !m.CW, Depth: m.Depth}
}

// String renders m in the move-text syntax: an axis letter, an optional
// leading '-' for counter-clockwise, and the depth, e.g. "f0", "-d1".
func (m Move) String() string {
	var sb strings.Builder
	if !m.CW {
		sb.WriteByte('-')
	}
	sb.WriteByte(m.Axis.letter())
	sb.WriteString(strconv.Itoa(m.Depth))
	return sb.String()
}

// ParseMove parses a single move in move-text syntax.
func ParseMove(s string) (Move, error) {
	if s == "" {
		return Move{}, fmt.Errorf("%w: empty move", xerr.InvalidInput)
	}
	cw := true
	rest := s
	if rest[0] == '-' {
		cw = false
		rest = rest[1:]
	}
	if rest == "" {
		return Move{}, fmt.Errorf("%w: move %q missing axis/depth", xerr.InvalidInput, s)
	}
	axis, ok := axisFromLetter(rest[0])
	if !ok {
		return Move{}, fmt.Errorf("%w: move %q has unknown axis letter %q", xerr.InvalidInput, s, rest[0])
	}
	depth, err := strconv.Atoi(rest[1:])
	if err != nil {
		return Move{}, fmt.Errorf("%w: move %q has invalid depth: %v", xerr.InvalidInput, s, err)
	}
	if depth < 0 {
		return Move{}, fmt.Errorf("%w: move %q has negative depth", xerr.InvalidInput, s)
	}
	return Move{Axis: axis, CW: cw, Depth: depth}, nil
}
