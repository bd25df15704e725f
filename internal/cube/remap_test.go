package cube

import "testing"

func TestEnumerateSliceMapsCoversExtremalOrders(t *testing.T) {
	maps := EnumerateSliceMaps(3, 3)
	if len(maps) == 0 {
		t.Fatal("mapping an order onto itself should yield at least the identity map")
	}
	found := false
	for _, m := range maps {
		if len(m.Forward) == 1 && m.Forward[0] == 1 {
			found = true
		}
	}
	if !found {
		t.Error("expected the identity slice map (depth 1 -> depth 1) among order-3-to-order-3 maps")
	}
}

func TestEnumerateSliceMapsEvenRefHasNoSolo(t *testing.T) {
	// order 4 has two interior depths (1,2) with no center; every
	// target with an odd interior therefore still has to pair them.
	maps := EnumerateSliceMaps(4, 5)
	if len(maps) == 0 {
		t.Fatal("expected at least one slice map from order 4 to order 5")
	}
	for _, m := range maps {
		if len(m.Forward) != 2 {
			t.Fatalf("Forward length = %d, want 2 (refOrder-2)", len(m.Forward))
		}
	}
}

func TestTargetDepthsExtremalPassThrough(t *testing.T) {
	m := &SliceMap{RefOrder: 5, TargetOrder: 9, Forward: []int{3, 1, 1, 3}}
	if got := m.targetDepths(0); len(got) != 1 || got[0] != 0 {
		t.Errorf("depth 0 should map to target depth 0, got %v", got)
	}
	if got := m.targetDepths(4); len(got) != 1 || got[0] != 8 {
		t.Errorf("depth refOrder-1 should map to target depth targetOrder-1, got %v", got)
	}
}

func TestRemapDropsUnmappedInteriorMoves(t *testing.T) {
	m := &SliceMap{RefOrder: 5, TargetOrder: 5, Forward: []int{-1, -1, -1}}
	f := mustFormula(t, "f1")
	if r := m.Remap(f); r != nil {
		t.Error("a move referencing an unmapped interior depth should make Remap return nil")
	}
}

func TestRemapAllFaceletChangesAgreeWithMoveReplayAtTargetOrder(t *testing.T) {
	refOrder, targetOrder := 5, 7
	ref := mustFormula(t, "f1.r1.-f1")
	ref.Precompute(refOrder)

	remapped := RemapAll([]*Formula{ref}, refOrder, targetOrder)
	if len(remapped) == 0 {
		t.Fatal("expected at least one specialization of a formula touching only symmetric interior depths")
	}

	for _, r := range remapped {
		if !r.HasFaceletChanges() {
			continue
		}
		solved := NewCube(targetOrder, PaletteRainbow)
		viaMap := solved.Clone()
		viaMap.RotateFormula(r)
		viaReplay := solved.Clone()
		viaReplay.RotateMoves(r.Moves)
		if !viaMap.Equal(viaReplay) {
			t.Errorf("formula %q: facelet-change map disagrees with move replay at order %d", r.String(), targetOrder)
		}
	}
}

func TestIsScaleStableMatchesChangeCardinality(t *testing.T) {
	m := &SliceMap{RefOrder: 5, TargetOrder: 5, Forward: []int{1, 2, 3}}
	f := mustFormula(t, "f1")
	f.Precompute(5)
	if !m.IsScaleStable(f) {
		t.Error("remapping a formula onto its own order with the identity map should be scale-stable")
	}
}
