package dispatch

import (
	"testing"

	"github.com/santa23kit/solver/internal/wreath"
)

func TestLabelsToColorsToLabelsRoundTrip(t *testing.T) {
	labels := []string{"A", "B", "A", "C", "B"}
	colors := LabelsToColors(labels)
	back := ColorsToLabels(colors)
	for i := range labels {
		if back[i] != labels[i] {
			// Labels are only guaranteed to round-trip when the input's
			// first-seen order already starts at 'A', which ReadPuzzles
			// rows always do in practice.
			t.Fatalf("index %d: got %q, want %q", i, back[i], labels[i])
		}
	}
}

func TestLabelsToColorsDenseFirstSeen(t *testing.T) {
	colors := LabelsToColors([]string{"X", "Y", "X", "Z"})
	want := []int{0, 1, 0, 2}
	for i, c := range colors {
		if int(c) != want[i] {
			t.Errorf("index %d: got %d, want %d", i, c, want[i])
		}
	}
}

func TestJoinFormulasSumsCost(t *testing.T) {
	l, _ := wreath.ParseMove("l")
	r, _ := wreath.ParseMove("r")
	formulas := []*wreath.Formula{
		wreath.NewFormula([]wreath.Move{l, r}),
		wreath.NewFormula([]wreath.Move{l.Inverse()}),
	}
	text, cost := joinFormulas(formulas)
	if cost != 3 {
		t.Errorf("cost = %d, want 3 (sum of each formula's move count)", cost)
	}
	if text != "l.r.-l" {
		t.Errorf("text = %q, want %q", text, "l.r.-l")
	}
}
