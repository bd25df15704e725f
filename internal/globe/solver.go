package globe

import "github.com/santa23kit/solver/internal/beam"

// SolverConfig configures the globe beam solver.
type SolverConfig struct {
	Width   int
	MaxCost int
	Seed    uint64
	Library []*Formula
	Target  *Globe
}

// Solve runs the shared beam engine against a globe state, scoring
// candidates by MismatchCount against cfg.Target.
func Solve(cfg SolverConfig, start *Globe) ([]*Formula, bool) {
	expand := func(v *beam.Node[*Globe]) []beam.Child[*Globe] {
		children := make([]beam.Child[*Globe], 0, len(cfg.Library))
		for _, f := range cfg.Library {
			child := v.State.Clone()
			child.ApplyFormula(f)
			children = append(children, beam.Child[*Globe]{
				Label: f.String(),
				Cost:  f.Cost(),
				State: child,
				Score: child.MismatchCount(cfg.Target),
			})
		}
		return children
	}

	solver := &beam.Solver[*Globe]{
		Width:   cfg.Width,
		MaxCost: cfg.MaxCost,
		Rng:     beam.NewRand(cfg.Seed),
		Expand:  expand,
	}

	node, ok := solver.Solve(start, start.MismatchCount(cfg.Target))
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
