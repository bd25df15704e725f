package cube

import "github.com/santa23kit/solver/internal/beam"

// Scorer computes a puzzle-specific distance-to-target for a cube
// state; 0 means solved. The beam solver is otherwise indifferent to
// which scoring function is plugged in (spec.md §4.5).
type Scorer interface {
	Score(c *Cube) int
}

// FaceDiffScorer counts interior facelets differing from Target,
// matching the "face_diff" scoring mode used for rainbow cubes, where
// every facelet is individually distinguishable.
type FaceDiffScorer struct{ Target *Cube }

func (s FaceDiffScorer) Score(c *Cube) int { return c.ComputeFaceDiff(s.Target) }

// FaceScoreScorer derives a FaceCube view of c and scores it against
// Target via the weighted face-score (center cell weighted 100x on odd
// orders).
type FaceScoreScorer struct{ Target *FaceCube }

func (s FaceScoreScorer) Score(c *Cube) int {
	return NewFaceCubeFromCube(c).ComputeFaceScore(s.Target)
}

// EdgeScoreScorer derives an EdgeCube view of c and scores its
// self-consistency (no target needed: each edge strip is judged
// against its own center cell).
type EdgeScoreScorer struct{}

func (EdgeScoreScorer) Score(c *Cube) int { return NewEdgeCubeFromCube(c).EdgeScore() }

// SolverConfig configures the cube beam solver.
type SolverConfig struct {
	Width   int
	MaxCost int
	Seed    uint64
	Library []*Formula
	Scorer  Scorer
}

// Solve runs the beam search of spec.md §4.5 from start, returning the
// solving formula sequence (possibly empty, if start already scores
// 0) and true, or (nil, false) if the search exhausts MaxCost without
// reaching a zero-score state.
func Solve(cfg SolverConfig, start *Cube) ([]*Formula, bool) {
	for _, f := range cfg.Library {
		if !f.HasFaceletChanges() {
			f.Precompute(start.Order)
		}
	}

	expand := func(v *beam.Node[*Cube]) []beam.Child[*Cube] {
		children := make([]beam.Child[*Cube], 0, len(cfg.Library))
		for _, f := range cfg.Library {
			child := v.State.Clone()
			child.RotateFormula(f)
			children = append(children, beam.Child[*Cube]{
				Label: f.String(),
				Cost:  f.Cost(),
				State: child,
				Score: cfg.Scorer.Score(child),
			})
		}
		return children
	}

	solver := &beam.Solver[*Cube]{
		Width:   cfg.Width,
		MaxCost: cfg.MaxCost,
		Rng:     beam.NewRand(cfg.Seed),
		Expand:  expand,
	}

	node, ok := solver.Solve(start, cfg.Scorer.Score(start))
	if !ok {
		return nil, false
	}
	labels := node.Path()
	formulas := make([]*Formula, 0, len(labels))
	for _, l := range labels {
		f, err := ParseFormula(l)
		if err != nil {
			continue
		}
		formulas = append(formulas, f)
	}
	return formulas, true
}
