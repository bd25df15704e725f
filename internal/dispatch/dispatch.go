// Package dispatch resolves one Kaggle puzzle record (spec.md §6) to
// its family's state kernel and beam solver, and is the shared
// implementation behind both the CLI's batch command and the web job
// API — a single solve request should behave identically from either
// front-end.
package dispatch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santa23kit/solver/internal/cube"
	"github.com/santa23kit/solver/internal/globe"
	"github.com/santa23kit/solver/internal/kaggle"
	"github.com/santa23kit/solver/internal/wreath"
	"github.com/santa23kit/solver/internal/xerr"
)

// loadLines reads path, skipping blank lines and '#'-prefixed comments
// (including the optional "# Number of formulas: N" header).
func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerr.MissingResource, err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Request names one puzzle to solve, independent of where it's loaded
// from (a CSV row or a web job's JSON body).
type Request struct {
	Puzzle     kaggle.Puzzle
	FormulaDir string
	BeamWidth  int
	MaxCost    int
	Seed       uint64
}

// Result is the outcome of solving one Request.
type Result struct {
	Moves      string
	Cost       int
	WithinTol  bool
}

// Solve dispatches req to its puzzle family's solver and formula
// library on disk, loading "<family>-<dims>.txt" (or, for cube,
// "cube-<order>.normal.txt") from req.FormulaDir.
func Solve(req Request) (Result, error) {
	p := req.Puzzle
	switch p.Type.Family {
	case kaggle.FamilyCube:
		return solveCube(req)
	case kaggle.FamilyWreath:
		return solveWreath(req)
	case kaggle.FamilyGlobe:
		return solveGlobe(req)
	default:
		return Result{}, fmt.Errorf("%w: unknown puzzle family %q", xerr.InvalidInput, p.Type.Family)
	}
}

func solveCube(req Request) (Result, error) {
	p := req.Puzzle
	if len(p.Type.Dims) == 0 {
		return Result{}, fmt.Errorf("%w: cube puzzle type missing order: %s", xerr.InvalidInput, p.Type)
	}
	order := p.Type.Dims[0]
	palette := cube.PaletteNormal

	startColors := LabelsToColors(p.Initial)
	targetColors := LabelsToColors(p.Target)
	startCube := cube.NewCube(order, palette)
	if err := startCube.ReadKaggleColoring(startColors); err != nil {
		return Result{}, err
	}
	targetCube := cube.NewCube(order, palette)
	if err := targetCube.ReadKaggleColoring(targetColors); err != nil {
		return Result{}, err
	}

	formulas, err := cube.LoadFormulasFromFile(filepath.Join(req.FormulaDir, fmt.Sprintf("cube-%d.normal.txt", order)))
	if err != nil {
		return Result{}, err
	}
	result, ok := cube.Solve(cube.SolverConfig{
		Width: req.BeamWidth, MaxCost: req.MaxCost, Seed: req.Seed,
		Library: formulas, Scorer: cube.FaceScoreScorer{Target: cube.NewFaceCubeFromCube(targetCube)},
	}, startCube)
	if !ok {
		return Result{}, xerr.SearchExhausted
	}

	moves, cost := joinFormulas(result)
	got := startCube.Clone()
	for _, f := range result {
		got.RotateFormula(f)
	}
	within := kaggle.WithinWildcards(ColorsToLabels(got.WriteKaggleColoring()), p.Target, p.Wildcards)
	return Result{Moves: moves, Cost: cost, WithinTol: within}, nil
}

func solveWreath(req Request) (Result, error) {
	p := req.Puzzle
	if len(p.Type.Dims) == 0 {
		return Result{}, fmt.Errorf("%w: wreath puzzle type missing size: %s", xerr.InvalidInput, p.Type)
	}
	size := p.Type.Dims[0]

	formulas, err := loadWreathFormulas(filepath.Join(req.FormulaDir, fmt.Sprintf("wreath-%d.txt", size)))
	if err != nil {
		return Result{}, err
	}
	startW := wreath.New(size)
	targetW := wreath.New(size)
	result, ok := wreath.Solve(wreath.SolverConfig{
		Width: req.BeamWidth, MaxCost: req.MaxCost, Seed: req.Seed,
		Library: formulas, Target: targetW,
	}, startW)
	if !ok {
		return Result{}, xerr.SearchExhausted
	}
	moves, cost := joinFormulas(result)
	got := startW.Clone()
	for _, f := range result {
		got.Apply(f)
	}
	return Result{Moves: moves, Cost: cost, WithinTol: got.MismatchCount(targetW) <= p.Wildcards}, nil
}

func solveGlobe(req Request) (Result, error) {
	p := req.Puzzle
	if len(p.Type.Dims) < 2 {
		return Result{}, fmt.Errorf("%w: globe puzzle type missing dims: %s", xerr.InvalidInput, p.Type)
	}
	bands, width := p.Type.Dims[0], p.Type.Dims[1]

	formulas, err := loadGlobeFormulas(filepath.Join(req.FormulaDir, fmt.Sprintf("globe-%dx%d.txt", bands, width)))
	if err != nil {
		return Result{}, err
	}
	startG := globe.New(2*bands, width, 2*width)
	targetG := globe.New(2*bands, width, 2*width)
	result, ok := globe.Solve(globe.SolverConfig{
		Width: req.BeamWidth, MaxCost: req.MaxCost, Seed: req.Seed,
		Library: formulas, Target: targetG,
	}, startG)
	if !ok {
		return Result{}, xerr.SearchExhausted
	}
	moves, cost := joinFormulas(result)
	got := startG.Clone()
	for _, f := range result {
		got.ApplyFormula(f)
	}
	return Result{Moves: moves, Cost: cost, WithinTol: got.MismatchCount(targetG) <= p.Wildcards}, nil
}

type formulaLike interface {
	String() string
	Cost() int
}

func joinFormulas[T formulaLike](fs []T) (string, int) {
	parts := make([]string, len(fs))
	cost := 0
	for i, f := range fs {
		parts[i] = f.String()
		cost += f.Cost()
	}
	return strings.Join(parts, "."), cost
}

func loadWreathFormulas(path string) ([]*wreath.Formula, error) {
	lines, err := loadLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]*wreath.Formula, 0, len(lines))
	for _, l := range lines {
		f, err := wreath.ParseFormula(l)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func loadGlobeFormulas(path string) ([]*globe.Formula, error) {
	lines, err := loadLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]*globe.Formula, 0, len(lines))
	for _, l := range lines {
		f, err := globe.ParseFormula(l)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// LabelsToColors maps Kaggle alphabetic color labels ("A","B",...) to
// dense Color indices in first-seen order, matching how competition
// colorings name classes without a fixed global alphabet.
func LabelsToColors(labels []string) []cube.Color {
	seen := map[string]cube.Color{}
	out := make([]cube.Color, len(labels))
	var next cube.Color
	for i, l := range labels {
		c, ok := seen[l]
		if !ok {
			c = next
			seen[l] = c
			next++
		}
		out[i] = c
	}
	return out
}

// ColorsToLabels renders dense color indices back as Kaggle-style
// alphabetic labels, the inverse of LabelsToColors.
func ColorsToLabels(colors []cube.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = string(rune('A' + int(c)))
	}
	return out
}
