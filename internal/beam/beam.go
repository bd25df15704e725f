// Package beam implements the puzzle-agnostic cost-bucketed beam
// search described in spec.md §4.5: a bounded multiset of candidate
// nodes per cumulative move cost, expanded against a caller-supplied
// action set and replaced on collision by a seeded PRNG. Cube, wreath,
// and globe solvers all share this engine; only their Expand callback
// differs.
package beam

// Child is one candidate produced by expanding a node: applying an
// action of the given cost to the parent's state yields State, scored
// by Score (0 means solved).
type Child[S any] struct {
	Label string
	Cost  int
	State S
	Score int
}

// Node is one entry in the search tree. Parent pointers form a shared
// ancestry DAG; Go's garbage collector reclaims an ancestor once no
// surviving node references it, so no manual refcounting is needed.
type Node[S any] struct {
	State  S
	Cost   int
	Score  int
	Parent *Node[S]
	Action string
}

// Path reconstructs the sequence of action labels from the root to n.
func (n *Node[S]) Path() []string {
	var rev []string
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		rev = append(rev, cur.Action)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Expander produces v's children. Implementations may inspect v's
// Parent/Action to re-derive alternative actions for the move that
// produced v; the cube, wreath and globe solvers do not, and expand
// from v's state alone.
type Expander[S any] func(v *Node[S]) []Child[S]

// Solver runs the bounded beam search to a target cost horizon.
type Solver[S any] struct {
	Width   int
	MaxCost int
	Rng     *Rand
	Expand  Expander[S]
}

// Solve runs the main loop of spec.md §4.5 starting from start (scored
// by startScore), returning the first node whose Score is 0, or
// (nil, false) if the horizon is reached first.
func (s *Solver[S]) Solve(start S, startScore int) (*Node[S], bool) {
	buckets := map[int][]*Node[S]{
		0: {{State: start, Score: startScore}},
	}
	for c := 0; c <= s.MaxCost; c++ {
		layer := buckets[c]
		delete(buckets, c)
		for _, v := range layer {
			if v.Score == 0 {
				return v, true
			}
			for _, ch := range s.Expand(v) {
				cp := c + ch.Cost
				if cp > s.MaxCost {
					continue
				}
				bucket := buckets[cp]
				if len(bucket) < s.Width {
					buckets[cp] = append(bucket, &Node[S]{
						State: ch.State, Cost: cp, Score: ch.Score,
						Parent: v, Action: ch.Label,
					})
					continue
				}
				i := s.Rng.Intn(s.Width)
				if ch.Score < bucket[i].Score {
					bucket[i] = &Node[S]{
						State: ch.State, Cost: cp, Score: ch.Score,
						Parent: v, Action: ch.Label,
					}
				}
			}
		}
	}
	return nil, false
}
