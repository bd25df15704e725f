package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/santa23kit/solver/internal/cfen"
	"github.com/santa23kit/solver/internal/cube"
	"github.com/santa23kit/solver/internal/globe"
	"github.com/santa23kit/solver/internal/kaggle"
	"github.com/santa23kit/solver/internal/wreath"
	"github.com/santa23kit/solver/internal/xerr"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the beam solver against a single puzzle",
	Long: `Solve runs the bounded beam search of spec.md §4.5 against one puzzle
instance (solved, or starting from a --cfen state) using a
formula library loaded from a file, printing the resulting move sequence
and its cost, or reporting search_exhausted if the horizon is reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		family, _ := cmd.Flags().GetString("family")
		beamWidth, _ := cmd.Flags().GetInt("beam-width")
		maxCost, _ := cmd.Flags().GetInt("max-cost")
		seed, _ := cmd.Flags().GetInt64("seed")
		formulaPath, _ := cmd.Flags().GetString("formulas")
		startCfen, _ := cmd.Flags().GetString("cfen")
		out, _ := cmd.Flags().GetString("out")

		start := time.Now()
		var moves string
		var cost int
		var ok bool

		switch family {
		case "cube":
			order, _ := cmd.Flags().GetInt("order")
			paletteStr, _ := cmd.Flags().GetString("palette")
			palette, err := parsePalette(paletteStr)
			if err != nil {
				return err
			}
			var startCube *cube.Cube
			if startCfen != "" {
				st, err := cfen.Parse(startCfen)
				if err != nil {
					return err
				}
				startCube = st.ToCube()
			} else {
				startCube = newSolvedCube(order, palette)
			}
			target := newSolvedCube(order, palette)
			formulas, err := cube.LoadFormulasFromFile(formulaPath)
			if err != nil {
				return err
			}
			var scorer cube.Scorer
			if palette == cube.PaletteRainbow {
				scorer = cube.FaceDiffScorer{Target: target}
			} else {
				scorer = cube.FaceScoreScorer{Target: cube.NewFaceCubeFromCube(target)}
			}
			result, solved := cube.Solve(cube.SolverConfig{
				Width: beamWidth, MaxCost: maxCost, Seed: uint64(seed),
				Library: formulas, Scorer: scorer,
			}, startCube)
			ok = solved
			if ok {
				moves, cost = joinCubeFormulas(result)
			}
		case "wreath":
			size, _ := cmd.Flags().GetInt("order")
			startW := wreath.New(size)
			formulas, err := loadWreathFormulas(formulaPath)
			if err != nil {
				return err
			}
			result, solved := wreath.Solve(wreath.SolverConfig{
				Width: beamWidth, MaxCost: maxCost, Seed: uint64(seed),
				Library: formulas, Target: wreath.New(size),
			}, startW)
			ok = solved
			if ok {
				moves, cost = joinWreathFormulas(result)
			}
		case "globe":
			bands, _ := cmd.Flags().GetInt("bands")
			width, _ := cmd.Flags().GetInt("width")
			colors, _ := cmd.Flags().GetInt("colors")
			startG := newSolvedGlobe(bands, width, colors)
			formulas, err := loadGlobeFormulas(formulaPath)
			if err != nil {
				return err
			}
			result, solved := globe.Solve(globe.SolverConfig{
				Width: beamWidth, MaxCost: maxCost, Seed: uint64(seed),
				Library: formulas, Target: newSolvedGlobe(bands, width, colors),
			}, startG)
			ok = solved
			if ok {
				moves, cost = joinGlobeFormulas(result)
			}
		default:
			return fmt.Errorf("%w: unknown family %q (want cube, wreath, or globe)", xerr.InvalidInput, family)
		}

		if !ok {
			return fmt.Errorf("%w: no solution within max-cost %d", xerr.SearchExhausted, maxCost)
		}

		fmt.Printf("solved in %s: cost %d\n%s\n", humanize.RelTime(start, time.Now(), "", ""), cost, moves)
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("%w: %v", xerr.MissingResource, err)
			}
			defer f.Close()
			if err := kaggle.WriteSolution(f, kaggle.Solution{Moves: moves, Cost: cost}); err != nil {
				return err
			}
		}
		return nil
	},
}

func joinCubeFormulas(fs []*cube.Formula) (string, int) {
	cost := 0
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, f.String())
		cost += f.Cost()
	}
	return joinDot(parts), cost
}

func joinWreathFormulas(fs []*wreath.Formula) (string, int) {
	cost := 0
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, f.String())
		cost += f.Cost()
	}
	return joinDot(parts), cost
}

func joinGlobeFormulas(fs []*globe.Formula) (string, int) {
	cost := 0
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, f.String())
		cost += f.Cost()
	}
	return joinDot(parts), cost
}

func init() {
	solveCmd.Flags().String("family", "cube", "puzzle family: cube, wreath, or globe")
	solveCmd.Flags().String("formulas", "", "formula library file (required)")
	solveCmd.Flags().Int("beam-width", 256, "beam width (W)")
	solveCmd.Flags().Int("max-cost", 200, "maximum cumulative cost horizon")
	solveCmd.Flags().Int64("seed", 42, "PRNG seed for replace-on-collision")
	solveCmd.Flags().IntP("order", "n", 3, "cube order or wreath size")
	solveCmd.Flags().StringP("palette", "p", "normal", "cube palette: normal or rainbow")
	solveCmd.Flags().String("cfen", "", "starting cube state as CFEN (default: solved)")
	solveCmd.Flags().Int("bands", 1, "globe band count (height = 2*bands)")
	solveCmd.Flags().Int("width", 8, "globe band width")
	solveCmd.Flags().Int("colors", 0, "globe color count (default 2*width)")
	solveCmd.Flags().String("out", "", "write the solution in the §6 two-line format to this file")
	solveCmd.MarkFlagRequired("formulas")
}
