package cube

import "testing"

func TestSolveAlreadySolved(t *testing.T) {
	order := 3
	start := NewCube(order, PaletteNormal)
	target := NewCube(order, PaletteNormal)
	cfg := SolverConfig{
		Width: 8, MaxCost: 10,
		Library: []*Formula{mustFormula(t, "f0")},
		Scorer:  FaceScoreScorer{Target: NewFaceCubeFromCube(target)},
	}
	formulas, ok := Solve(cfg, start)
	if !ok {
		t.Fatal("an already-solved start should solve")
	}
	if len(formulas) != 0 {
		t.Errorf("solving an already-solved cube should need 0 formulas, got %d", len(formulas))
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	// Rainbow palette and order 4 so a single face turn actually
	// perturbs interior facelets FaceDiffScorer can see (at order 3
	// the lone interior cell per face is the center, which no face
	// turn moves).
	order := 4
	start := NewCube(order, PaletteRainbow)
	start.Rotate(Move{Axis: AxisR, CW: true, Depth: 0})
	target := NewCube(order, PaletteRainbow)

	cfg := SolverConfig{
		Width: 16, MaxCost: 5,
		Library: []*Formula{
			mustFormula(t, "f0"), mustFormula(t, "-f0"),
			mustFormula(t, "r0"), mustFormula(t, "-r0"),
			mustFormula(t, "d0"), mustFormula(t, "-d0"),
		},
		Scorer: FaceDiffScorer{Target: target},
	}
	formulas, ok := Solve(cfg, start)
	if !ok {
		t.Fatal("a single-move scramble should solve within the given library and horizon")
	}
	got := start.Clone()
	for _, f := range formulas {
		got.RotateFormula(f)
	}
	if !got.Equal(target) {
		t.Error("the returned formula sequence should reach the target state exactly")
	}
}
