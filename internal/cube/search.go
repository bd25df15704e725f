package cube

import (
	"sort"
	"strings"
)

// SearchConfig bounds the formula searcher's DFS.
type SearchConfig struct {
	Order int // reference order the search runs over
	// MaxDepth is the maximum number of moves (D) in a candidate
	// formula.
	MaxDepth int
	// MaxInnerBudget (K) caps the "distance from identity" of the
	// inner-rotation counters at any prefix of the search.
	MaxInnerBudget int
	// MaxConjugateDepth (C) is how many rounds of conjugation
	// augmentation to run after the base DFS.
	MaxConjugateDepth int
	// CostChangeCeiling rejects a formula if cost*numChanges exceeds
	// it; 0 disables the filter. It keeps formulas "cheap per unit of
	// work done" and is the search's only bound on the number of
	// changed facelets.
	CostChangeCeiling int
}

// SearchResult holds the two formula sets a cube search produces.
type SearchResult struct {
	Normal  []*Formula
	Rainbow []*Formula
}

// SearchFormulas runs the bounded-depth DFS described in spec.md §4.3
// and returns the deduplicated, augmented normal/rainbow formula sets.
func SearchFormulas(cfg SearchConfig) SearchResult {
	s := &searcher{
		cfg:         cfg,
		order:       cfg.Order,
		solvedNorm:  NewCube(cfg.Order, PaletteNormal),
		solvedRain:  NewCube(cfg.Order, PaletteRainbow),
		innerCounts: make(map[innerKey]int),
		openAxis:    make(map[Axis]bool),
	}
	s.dfs(nil)

	normal := dedupeFormulas(s.normalFound, cfg.Order)
	rainbow := dedupeFormulas(s.rainbowFound, cfg.Order)

	for round := 0; round < cfg.MaxConjugateDepth; round++ {
		normal = dedupeFormulas(append(normal, conjugateAugment(normal, cfg.Order)...), cfg.Order)
		rainbow = dedupeFormulas(append(rainbow, conjugateAugment(rainbow, cfg.Order)...), cfg.Order)
	}
	normal = dedupeFormulas(append(normal, symmetryAugment(normal)...), cfg.Order)
	rainbow = dedupeFormulas(append(rainbow, symmetryAugment(rainbow)...), cfg.Order)

	for _, f := range normal {
		f.Precompute(cfg.Order)
	}
	for _, f := range rainbow {
		f.Precompute(cfg.Order)
	}

	return SearchResult{Normal: normal, Rainbow: rainbow}
}

type innerKey struct {
	Axis  Axis
	Depth int
}

type searcher struct {
	cfg   SearchConfig
	order int

	solvedNorm *Cube
	solvedRain *Cube

	path        []Move
	innerCounts map[innerKey]int
	innerDist   int
	openAxis    map[Axis]bool // axes with an unclosed extremal move

	normalFound  []*Formula
	rainbowFound []*Formula
}

// innerDistance returns the sum over (axis, depth) of min(count, 4-count).
func (s *searcher) innerDistance() int {
	dist := 0
	for _, c := range s.innerCounts {
		m := c % 4
		if m < 0 {
			m += 4
		}
		if d := m; d < 4-d {
			dist += d
		} else {
			dist += 4 - d
		}
	}
	return dist
}

func (s *searcher) dfs(_ []Move) {
	if len(s.path) > 0 {
		s.tryAcceptLeaf()
	}
	if len(s.path) >= s.cfg.MaxDepth {
		return
	}
	remaining := s.cfg.MaxDepth - len(s.path)
	for axis := AxisF; axis <= AxisR; axis++ {
		for depth := 0; depth < s.order; depth++ {
			for _, cw := range [2]bool{true, false} {
				m := Move{Axis: axis, CW: cw, Depth: depth}
				if !s.orderingOK(m) {
					continue
				}
				extremal := m.IsFaceRotation(s.order)
				key := innerKey{Axis: axis, Depth: depth}
				var prevOpen map[Axis]bool
				if !extremal {
					delta := 1
					if !cw {
						delta = -1
					}
					newCount := s.innerCounts[key] + delta
					s.innerCounts[key] = newCount
					newDist := s.innerDistance()
					if newDist > s.cfg.MaxInnerBudget || newDist > remaining-1 {
						s.innerCounts[key] = newCount - delta
						if s.innerCounts[key] == 0 {
							delete(s.innerCounts, key)
						}
						continue
					}
				} else {
					prevOpen = map[Axis]bool{}
					for a, v := range s.openAxis {
						prevOpen[a] = v
					}
					for a := range s.openAxis {
						if a != axis {
							s.openAxis[a] = false
						}
					}
					s.openAxis[axis] = true
				}

				s.path = append(s.path, m)
				s.dfs(nil)
				s.path = s.path[:len(s.path)-1]

				if extremal {
					s.openAxis = prevOpen
				} else {
					delta := 1
					if !cw {
						delta = -1
					}
					nc := s.innerCounts[key] - delta
					if nc%4 == 0 {
						delete(s.innerCounts, key)
					} else {
						s.innerCounts[key] = nc
					}
				}
			}
		}
	}
}

// orderingOK applies the run-ordering and 3-in-a-row pruning rules.
func (s *searcher) orderingOK(m Move) bool {
	if len(s.path) == 0 {
		return true
	}
	last := s.path[len(s.path)-1]
	if last.Axis == m.Axis {
		if last.Depth > m.Depth {
			return false
		}
		if last.Depth == m.Depth {
			if last.CW != m.CW {
				return false // move directly followed by its inverse
			}
			// count the trailing run of identical moves
			run := 1
			for i := len(s.path) - 2; i >= 0 && s.path[i] == last; i-- {
				run++
			}
			if m.CW && run >= 2 {
				return false // three identical positive turns
			}
			if !m.CW && run >= 1 {
				return false // two identical negative turns
			}
		}
	}
	return true
}

func (s *searcher) tryAcceptLeaf() {
	if s.innerDistance() != 0 {
		return
	}
	if len(s.openAxis) > 0 {
		for _, open := range s.openAxis {
			if open {
				return
			}
		}
	}
	last := s.path[len(s.path)-1]
	if last.IsFaceRotation(s.order) {
		return
	}

	moves := append([]Move(nil), s.path...)
	changes := ComputeFaceletChanges(s.order, moves)
	if len(changes) == 0 {
		return
	}
	if !s.changesUseful(changes) {
		return
	}
	cost := len(moves)
	if s.cfg.CostChangeCeiling > 0 && cost*len(changes) > s.cfg.CostChangeCeiling {
		return
	}

	nc := s.solvedNorm.Clone()
	nc.RotateMoves(moves)
	if !nc.Equal(s.solvedNorm) {
		return
	}
	f := NewFormula(moves)
	s.normalFound = append(s.normalFound, f)

	rc := s.solvedRain.Clone()
	rc.RotateMoves(moves)
	if rc.Equal(s.solvedRain) {
		s.rainbowFound = append(s.rainbowFound, NewFormula(moves))
	}
}

// changesUseful drops formulas whose facelet-change map touches a
// same-face pair or a corner/axis-center position (spec.md §4.2).
func (s *searcher) changesUseful(changes []FaceletChange) bool {
	n := s.order
	for _, ch := range changes {
		if ch.From.Face == ch.To.Face {
			return false
		}
		if isCornerOrAxisCenter(n, ch.From.Y, ch.From.X) ||
			isCornerOrAxisCenter(n, ch.To.Y, ch.To.X) {
			return false
		}
	}
	return true
}

func isCornerOrAxisCenter(order, y, x int) bool {
	corner := (y == 0 || y == order-1) && (x == 0 || x == order-1)
	center := order%2 == 1 && y == order/2 && x == order/2
	return corner || center
}

// dedupeFormulas keeps, for each distinct induced facelet-change
// permutation (computed fresh at the given order, since augmented
// formulas may not yet have Precompute run), the formula with smallest
// cost. Deduplication is idempotent: running it twice on its own
// output changes nothing, since every key is already unique.
func dedupeFormulas(formulas []*Formula, order int) []*Formula {
	best := make(map[string]*Formula)
	keyOrder := make([]string, 0, len(formulas))
	for _, f := range formulas {
		changes := f.Changes
		if changes == nil {
			changes = ComputeFaceletChanges(order, f.Moves)
		}
		key := permutationKey(changes)
		if cur, ok := best[key]; !ok {
			best[key] = f
			keyOrder = append(keyOrder, key)
		} else if f.Cost() < cur.Cost() {
			best[key] = f
		}
	}
	out := make([]*Formula, 0, len(keyOrder))
	for _, k := range keyOrder {
		out = append(out, best[k])
	}
	return out
}

func permutationKey(changes []FaceletChange) string {
	if changes == nil {
		return ""
	}
	cp := append([]FaceletChange(nil), changes...)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].From.Face != cp[j].From.Face {
			return cp[i].From.Face < cp[j].From.Face
		}
		if cp[i].From.Y != cp[j].From.Y {
			return cp[i].From.Y < cp[j].From.Y
		}
		return cp[i].From.X < cp[j].From.X
	})
	var sb strings.Builder
	for _, c := range cp {
		sb.WriteString(c.From.String())
		sb.WriteByte('>')
		sb.WriteString(c.To.String())
		sb.WriteByte(';')
	}
	return sb.String()
}

// conjugateAugment builds g*F*g^-1 for every formula F and every
// single-generator g at the given order, the standard augmentation
// that lets a formula discovered at one position be reused at another.
func conjugateAugment(formulas []*Formula, order int) []*Formula {
	var out []*Formula
	for _, f := range formulas {
		for axis := AxisF; axis <= AxisR; axis++ {
			for depth := 0; depth < order; depth++ {
				for _, cw := range [2]bool{true, false} {
					g := NewFormula([]Move{{Axis: axis, CW: cw, Depth: depth}})
					if g.Moves[0].IsFaceRotation(order) {
						// the rotation need not be undone for
						// rainbow-valid outputs in this controlled
						// case (spec.md §4.3).
						moves := append(append([]Move(nil), g.Moves...), f.Moves...)
						out = append(out, NewFormula(moves))
						continue
					}
					out = append(out, f.Conjugate(g))
				}
			}
		}
	}
	return out
}

// symmetryAugment relabels axes to produce isotopes of each formula.
func symmetryAugment(formulas []*Formula) []*Formula {
	perms := []map[Axis]Axis{
		{AxisF: AxisD, AxisD: AxisR, AxisR: AxisF},
		{AxisF: AxisR, AxisD: AxisF, AxisR: AxisD},
	}
	var out []*Formula
	for _, f := range formulas {
		for _, p := range perms {
			out = append(out, f.RotateAxes(p))
		}
	}
	return out
}
