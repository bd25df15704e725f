package wreath

import "testing"

func TestNewWreathSolved(t *testing.T) {
	for _, size := range []int{6, 10, 12} {
		w := New(size)
		if !w.Equal(New(size)) {
			t.Errorf("two freshly solved size-%d wreaths should be equal", size)
		}
	}
}

func TestMoveInverseRoundTrip(t *testing.T) {
	for _, text := range []string{"l", "r"} {
		m, err := ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		w := New(12)
		c := w.Clone()
		c.Rotate(m)
		c.Rotate(m.Inverse())
		if !c.Equal(w) {
			t.Errorf("move/inverse round-trip failed for %q", text)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, s := range []string{"", "x", "L"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should have errored", s)
		}
	}
}

// TestCommutatorOrderTwelve checks the size-12 wreath commutator
// l.r.-l.-r: not identity after one application, identity after six
// (the commutator moves six cells as two 3-cycles, so its order, 3,
// divides 6).
func TestCommutatorOrderTwelve(t *testing.T) {
	w := New(12)
	l, _ := ParseMove("l")
	r, _ := ParseMove("r")
	f := NewFormula([]Move{l, r, l.Inverse(), r.Inverse()})

	cur := w.Clone()
	cur.Apply(f)
	if cur.Equal(w) {
		t.Fatal("l.r.-l.-r should not be identity after one application")
	}
	for i := 0; i < 5; i++ {
		cur.Apply(f)
	}
	if !cur.Equal(w) {
		t.Fatal("l.r.-l.-r should return to solved after 6 applications on a size-12 wreath")
	}
}

func TestMismatchCount(t *testing.T) {
	w := New(10)
	target := New(10)
	if w.MismatchCount(target) != 0 {
		t.Errorf("two equal wreaths should have 0 mismatches")
	}
	l, _ := ParseMove("l")
	w.Rotate(l)
	if w.MismatchCount(target) == 0 {
		t.Errorf("a rotated wreath should mismatch the solved target")
	}
}
