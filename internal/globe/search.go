package globe

// kMaxFlipDepth bounds the nesting of unresolved flips a candidate
// formula may carry mid-search, mirroring GlobeFormulaSearcher's
// kMaxFlipDepth pruning constant.
const kMaxFlipDepth = 4

// SearchConfig bounds a globe formula search run against one
// representative band shape.
type SearchConfig struct {
	Height, Width int
	NColors       int
	MaxDepth      int
}

// SearchResult holds every distinct formula discovered within
// MaxDepth moves whose net effect on a solved globe is non-identity.
type SearchResult struct {
	Formulas []*Formula
}

// SearchFormulas performs a bounded DFS over row-rotations (restricted
// to the single representative band, since every band behaves
// identically) and flips at every column, tracking a running "flip
// depth" so that nested unresolved flips never exceed kMaxFlipDepth:
// a flip increments the depth, and a second flip at the SAME column
// cancels an outstanding one and decrements it (mirroring the
// reference solver's flip-depth accounting).
func SearchFormulas(cfg SearchConfig) SearchResult {
	s := &searcher{cfg: cfg, solved: New(cfg.Height, cfg.Width, cfg.NColors)}
	s.dfs()
	return SearchResult{Formulas: dedupe(s.found, cfg)}
}

type searcher struct {
	cfg       SearchConfig
	solved    *Globe
	path      []Move
	flipCols  []int
	flipDepth int
	found     []*Formula
}

func (s *searcher) candidates() []Move {
	half := s.cfg.Height / 2
	_ = half
	moves := []Move{
		{Kind: KindRotateRight, Row: 0},
		{Kind: KindRotateLeft, Row: 0},
	}
	for col := 0; col < s.cfg.Width; col++ {
		moves = append(moves, Move{Kind: KindFlip, Col: col})
	}
	return moves
}

func (s *searcher) dfs() {
	if len(s.path) > 0 {
		g := s.solved.Clone()
		f := NewFormula(s.path)
		g.ApplyFormula(f)
		if !g.Equal(s.solved) {
			s.found = append(s.found, f)
		}
	}
	if len(s.path) >= s.cfg.MaxDepth {
		return
	}
	for _, m := range s.candidates() {
		if !s.orderingOK(m) {
			continue
		}
		delta := s.applyFlipDepth(m)
		if s.flipDepth <= kMaxFlipDepth {
			s.path = append(s.path, m)
			s.dfs()
			s.path = s.path[:len(s.path)-1]
		}
		s.undoFlipDepth(m, delta)
	}
}

// applyFlipDepth updates the flip-depth tracker for move m, returning
// the delta applied so it can be undone on backtrack.
func (s *searcher) applyFlipDepth(m Move) int {
	if m.Kind != KindFlip {
		return 0
	}
	for i := len(s.flipCols) - 1; i >= 0; i-- {
		if s.flipCols[i] == m.Col {
			s.flipCols = append(s.flipCols[:i], s.flipCols[i+1:]...)
			s.flipDepth--
			return -1
		}
	}
	s.flipCols = append(s.flipCols, m.Col)
	s.flipDepth++
	return 1
}

func (s *searcher) undoFlipDepth(m Move, delta int) {
	if delta == 0 {
		return
	}
	if delta == 1 {
		s.flipCols = s.flipCols[:len(s.flipCols)-1]
		s.flipDepth--
	} else {
		s.flipCols = append(s.flipCols, m.Col)
		s.flipDepth++
	}
}

// orderingOK rejects a rotation that immediately cancels the previous
// move; a flip is always allowed, even right after the same flip.
func (s *searcher) orderingOK(m Move) bool {
	n := len(s.path)
	if n == 0 {
		return true
	}
	return s.path[n-1] != m.Inverse() || m.Kind == KindFlip
}

func dedupe(formulas []*Formula, cfg SearchConfig) []*Formula {
	seen := map[uint64][]*Formula{}
	solved := New(cfg.Height, cfg.Width, cfg.NColors)
	var out []*Formula
	for _, f := range formulas {
		g := solved.Clone()
		g.ApplyFormula(f)
		h := g.Hash()
		dup := false
		for _, other := range seen[h] {
			og := solved.Clone()
			og.ApplyFormula(other)
			if og.Equal(g) {
				dup = true
				if len(f.Moves) < len(other.Moves) {
					*other = *f
				}
				break
			}
		}
		if !dup {
			seen[h] = append(seen[h], f)
			out = append(out, f)
		}
	}
	return out
}

// AugmentFlipShift produces, for every formula in formulas, one
// variant per column shift: every flip column index is translated by
// the same offset mod width, matching the reference searcher's
// "augment first flip to every column" pass. SearchFormulas does not
// call it; its DFS already tries a flip at every column.
func AugmentFlipShift(formulas []*Formula, width int) []*Formula {
	out := make([]*Formula, 0, len(formulas)*width)
	for _, f := range formulas {
		for shift := 0; shift < width; shift++ {
			moves := make([]Move, len(f.Moves))
			for i, m := range f.Moves {
				if m.Kind == KindFlip {
					m.Col = (m.Col + shift) % width
				}
				moves[i] = m
			}
			out = append(out, NewFormula(moves))
		}
	}
	return out
}

// AugmentRowMirror produces, for every formula, the formula itself and
// a variant with its row rotations mirrored top-for-bottom (row r
// becomes height-1-r); rotation directions and flips are kept as they
// are. SearchFormulas does not call it.
func AugmentRowMirror(formulas []*Formula, height int) []*Formula {
	out := make([]*Formula, 0, len(formulas)*2)
	for _, f := range formulas {
		mirrored := make([]Move, len(f.Moves))
		for i, m := range f.Moves {
			if m.Kind == KindRotateRight || m.Kind == KindRotateLeft {
				m.Row = height - 1 - m.Row
			}
			mirrored[i] = m
		}
		out = append(out, f, NewFormula(mirrored))
	}
	return out
}
