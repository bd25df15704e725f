package wreath

// SearchConfig bounds a wreath formula search.
type SearchConfig struct {
	Size     int
	MaxDepth int
}

// SearchResult holds every distinct (by resulting state) formula
// discovered within MaxDepth moves whose net effect on the solved
// wreath is not the identity, for use as library moves by the beam
// solver. The cycle structure of that effect is not checked.
type SearchResult struct {
	Formulas []*Formula
}

// SearchFormulas performs a bounded DFS over wreath move sequences,
// recording every sequence whose net permutation is a non-identity
// endomorphism worth keeping as a solver move: it forbids immediately
// cancelling pairs (m, m.Inverse()) and more than three consecutive
// moves on the same ring, mirroring the pruning cube's search.go
// applies to slice moves.
func SearchFormulas(cfg SearchConfig) SearchResult {
	s := &searcher{cfg: cfg, solved: New(cfg.Size)}
	s.dfs(nil)
	return SearchResult{Formulas: dedupe(s.found, cfg.Size)}
}

type searcher struct {
	cfg    SearchConfig
	solved *Wreath
	path   []Move
	found  []*Formula
}

func (s *searcher) dfs(_ []Move) {
	if len(s.path) > 0 {
		w := s.solved.Clone()
		f := NewFormula(s.path)
		w.Apply(f)
		if !w.Equal(s.solved) {
			s.found = append(s.found, f)
		}
	}
	if len(s.path) >= s.cfg.MaxDepth {
		return
	}
	for _, m := range []Move{{Ring: RingA}, {Ring: RingA, Reverse: true}, {Ring: RingB}, {Ring: RingB, Reverse: true}} {
		if !s.orderingOK(m) {
			continue
		}
		s.path = append(s.path, m)
		s.dfs(nil)
		s.path = s.path[:len(s.path)-1]
	}
}

// orderingOK rejects a move that immediately cancels the previous one,
// or that would make a fourth consecutive move on the same ring, so
// runs of same-ring moves are capped at three.
func (s *searcher) orderingOK(m Move) bool {
	n := len(s.path)
	if n > 0 && s.path[n-1] == m.Inverse() {
		return false
	}
	run := 0
	for i := n - 1; i >= 0 && s.path[i].Ring == m.Ring; i-- {
		run++
	}
	return run < 3
}

func dedupe(formulas []*Formula, size int) []*Formula {
	seen := map[uint64][]*Formula{}
	solved := New(size)
	var out []*Formula
	for _, f := range formulas {
		w := solved.Clone()
		w.Apply(f)
		h := w.Hash()
		dup := false
		for _, g := range seen[h] {
			gw := solved.Clone()
			gw.Apply(g)
			if gw.Equal(w) {
				dup = true
				if len(f.Moves) < len(g.Moves) {
					*g = *f
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
