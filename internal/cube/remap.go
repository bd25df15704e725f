package cube

// SliceMap is a partial injection from a reference order's interior
// depths {1,...,refOrder-2} into a target order's interior depths
// {1,...,targetOrder-2}, together with its inverse (a target depth's
// preimage may contain more than one reference depth is wrong; it is
// the reference depth's image that may, when inverted, list several
// target depths — see Inverse).
type SliceMap struct {
	RefOrder, TargetOrder int
	// Forward[refDepth] is the target depth it maps to, or -1 if unused.
	Forward []int
}

// Inverse returns, for each reference depth, the list of target depths
// whose Forward entry points back to it (one entry for a mapped
// reference depth, none for an unused one; kept as a slice to match the expansion semantics
// used when a reference depth's preimage is widened externally, as
// happens for FaceAction-level slice maps in the original solver).
func (m *SliceMap) Inverse() [][]int {
	inv := make([][]int, len(m.Forward))
	for ref, tgt := range m.Forward {
		if tgt >= 0 {
			inv[ref] = []int{tgt}
		}
	}
	return inv
}

// EnumerateSliceMaps returns every valid slice map from a reference
// order's interior depths into a target order's interior depths,
// enumerated by DFS over symmetric depth pairs as described in
// spec.md §4.4: pairs (i, refOrder-2-i) map to pairs (j,
// targetOrder-2-j); an odd reference's center depth must map to the
// target's center (if the target is also odd) or be left unused.
func EnumerateSliceMaps(refOrder, targetOrder int) []*SliceMap {
	refInner := refOrder - 2
	targetInner := targetOrder - 2
	if refInner <= 0 {
		return []*SliceMap{{RefOrder: refOrder, TargetOrder: targetOrder, Forward: []int{}}}
	}

	// reference depths 1..refOrder-2 map conceptually; internally we
	// index by 0..refInner-1 (= depth-1) and 0..targetInner-1 likewise.
	refPairs := symmetricPairs(refInner)
	targetSlots := make([]int, targetInner)
	for i := range targetSlots {
		targetSlots[i] = i
	}

	var out []*SliceMap
	forward := make([]int, refInner)
	for i := range forward {
		forward[i] = -1
	}
	used := make([]bool, targetInner)

	var dfs func(pairIdx int)
	dfs = func(pairIdx int) {
		if pairIdx == len(refPairs) {
			cp := append([]int(nil), forward...)
			out = append(out, &SliceMap{RefOrder: refOrder, TargetOrder: targetOrder, Forward: cp})
			return
		}
		pair := refPairs[pairIdx]
		if pair.lo == pair.hi {
			// odd reference center: must map to target center (if the
			// target is odd too) or be left unused.
			if targetInner%2 == 1 {
				center := targetInner / 2
				if !used[center] {
					used[center] = true
					forward[pair.lo] = center + 1
					dfs(pairIdx + 1)
					forward[pair.lo] = -1
					used[center] = false
				}
			}
			dfs(pairIdx + 1) // leave unused
			return
		}
		targetPairs := symmetricPairs(targetInner)
		for _, tp := range targetPairs {
			if tp.lo == tp.hi {
				continue // a two-depth pair cannot inject into the lone center
			}
			if used[tp.lo] || used[tp.hi] {
				continue
			}
			used[tp.lo], used[tp.hi] = true, true
			forward[pair.lo] = tp.lo + 1
			forward[pair.hi] = tp.hi + 1
			dfs(pairIdx + 1)
			forward[pair.lo], forward[pair.hi] = -1, -1
			used[tp.lo], used[tp.hi] = false, false

			if tp.lo != tp.hi {
				used[tp.lo], used[tp.hi] = true, true
				forward[pair.lo] = tp.hi + 1
				forward[pair.hi] = tp.lo + 1
				dfs(pairIdx + 1)
				forward[pair.lo], forward[pair.hi] = -1, -1
				used[tp.lo], used[tp.hi] = false, false
			}
		}
		dfs(pairIdx + 1) // leave this reference pair unused
	}
	dfs(0)
	return out
}

type depthPair struct{ lo, hi int }

// symmetricPairs returns the (i, n-1-i) index pairs covering 0..n-1,
// with a singleton pair when n is odd (the center index paired with
// itself).
func symmetricPairs(n int) []depthPair {
	var pairs []depthPair
	for i, j := 0, n-1; i <= j; i, j = i+1, j-1 {
		pairs = append(pairs, depthPair{lo: i, hi: j})
	}
	return pairs
}

// targetDepths returns the target depths a reference depth (1-indexed)
// expands to under m, in order. Extremal reference depths (0 or
// refOrder-1) carry over to the target's extremal depths directly.
func (m *SliceMap) targetDepths(refDepth int) []int {
	if refDepth == 0 {
		return []int{0}
	}
	if refDepth == m.RefOrder-1 {
		return []int{m.TargetOrder - 1}
	}
	if refDepth < 1 || refDepth > m.RefOrder-2 {
		return nil
	}
	tgt := m.Forward[refDepth-1]
	if tgt < 0 {
		return nil
	}
	return []int{tgt}
}

// Remap specializes f (searched at m.RefOrder) onto m.TargetOrder,
// translating each move's depth and lifting the facelet-change map if
// present. Returns nil if any move references an interior depth with
// no image under m (the map is not total for this slice map, so the
// formula cannot be specialized with it).
func (m *SliceMap) Remap(f *Formula) *Formula {
	var moves []Move
	for _, mv := range f.Moves {
		targets := m.targetDepths(mv.Depth)
		if targets == nil {
			return nil
		}
		for _, d := range targets {
			moves = append(moves, Move{Axis: mv.Axis, CW: mv.CW, Depth: d})
		}
	}
	out := NewFormula(moves)
	if f.HasFaceletChanges() {
		changes, ok := m.liftChanges(f.Changes)
		if !ok {
			return nil
		}
		out.Changes = changes
	}
	return out
}

// liftChanges lifts a reference-order facelet-change map to the target
// order: every reference (y, x) with 1 <= y, x <= refOrder-2 lifts to
// the Cartesian product of its preimage depths in the target; 0/refOrder-1
// coordinates carry straight through.
func (m *SliceMap) liftChanges(changes []FaceletChange) ([]FaceletChange, bool) {
	var out []FaceletChange
	for _, ch := range changes {
		fromYs := m.targetDepths(ch.From.Y)
		fromXs := m.targetDepths(ch.From.X)
		toYs := m.targetDepths(ch.To.Y)
		toXs := m.targetDepths(ch.To.X)
		if fromYs == nil || fromXs == nil || toYs == nil || toXs == nil {
			return nil, false
		}
		for _, fy := range fromYs {
			for _, fx := range fromXs {
				for _, ty := range toYs {
					for _, tx := range toXs {
						out = append(out, FaceletChange{
							From: FaceletPosition{Face: ch.From.Face, Y: fy, X: fx},
							To:   FaceletPosition{Face: ch.To.Face, Y: ty, X: tx},
						})
					}
				}
			}
		}
	}
	return out, true
}

// IsScaleStable reports whether remapping f with m produces a formula
// whose lifted facelet-change map has the same cardinality as f's own
// (i.e. every reference depth f touches injected to exactly one target
// depth). Scale-stable formulas cost the same at every order the slice
// map reaches and are preferred by the solver.
func (m *SliceMap) IsScaleStable(f *Formula) bool {
	remapped := m.Remap(f)
	if remapped == nil {
		return false
	}
	return len(remapped.Changes) == len(f.Changes)
}

// RemapAll specializes every formula in formulas onto targetOrder,
// trying every valid slice map from refOrder and keeping, per source
// formula, the remapped variants that succeed (a move referencing an
// unmapped interior depth is dropped for that slice map).
func RemapAll(formulas []*Formula, refOrder, targetOrder int) []*Formula {
	maps := EnumerateSliceMaps(refOrder, targetOrder)
	var out []*Formula
	for _, f := range formulas {
		for _, m := range maps {
			if r := m.Remap(f); r != nil {
				out = append(out, r)
			}
		}
	}
	return out
}
