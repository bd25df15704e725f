package wreath

import "github.com/santa23kit/solver/internal/beam"

// SolverConfig configures the wreath beam solver.
type SolverConfig struct {
	Width   int
	MaxCost int
	Seed    uint64
	Library []*Formula
	Target  *Wreath
}

// Solve runs the shared beam engine against a wreath state, scoring
// candidates by MismatchCount against cfg.Target.
func Solve(cfg SolverConfig, start *Wreath) ([]*Formula, bool) {
	expand := func(v *beam.Node[*Wreath]) []beam.Child[*Wreath] {
		children := make([]beam.Child[*Wreath], 0, len(cfg.Library))
		for _, f := range cfg.Library {
			child := v.State.Clone()
			child.Apply(f)
			children = append(children, beam.Child[*Wreath]{
				Label: f.String(),
				Cost:  f.Cost(),
				State: child,
				Score: child.MismatchCount(cfg.Target),
			})
		}
		return children
	}

	solver := &beam.Solver[*Wreath]{
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
