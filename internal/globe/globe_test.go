package globe

import "testing"

func TestNewGlobeSolved(t *testing.T) {
	g := New(2, 8, 16)
	if !g.Equal(New(2, 8, 16)) {
		t.Fatal("two freshly solved globes should be equal")
	}
}

func TestApplyInverseRoundTrip(t *testing.T) {
	g := New(4, 6, 12)
	for _, text := range []string{"r0", "-r1", "f2"} {
		m, err := ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		c := g.Clone()
		c.Apply(m)
		c.Apply(m.Inverse())
		if !c.Equal(g) {
			t.Errorf("move/inverse round-trip failed for %q", text)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, s := range []string{"", "x0", "r"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should have errored", s)
		}
	}
}

// TestFlipPreservesColorMultiset checks spec's globe invariant: any
// sequence of generators permutes facelets without ever changing which
// colors exist or how many of each.
func TestFlipPreservesColorMultiset(t *testing.T) {
	g := New(2, 8, 16)
	f0, _ := ParseMove("f0")
	r0, _ := ParseMove("r0")
	formula := NewFormula([]Move{f0, r0, f0.Inverse()})

	before := colorMultiset(g)
	cur := g.Clone()
	cur.ApplyFormula(formula)
	if cur.MismatchCount(g) == 0 {
		t.Fatal("f0.r0.-f0 should change the globe")
	}
	after := colorMultiset(cur)
	for c, n := range before {
		if after[c] != n {
			t.Errorf("color %d: count changed from %d to %d", c, n, after[c])
		}
	}
}

func colorMultiset(g *Globe) map[Color]int {
	out := map[Color]int{}
	for _, u := range g.Units {
		for row := 0; row < 2; row++ {
			for _, c := range u.Facelets[row] {
				out[c]++
			}
		}
	}
	return out
}
