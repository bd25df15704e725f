package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/santa23kit/solver/internal/cube"
	"github.com/santa23kit/solver/internal/formuladb"
	"github.com/santa23kit/solver/internal/globe"
	"github.com/santa23kit/solver/internal/wreath"
	"github.com/santa23kit/solver/internal/xerr"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run the bounded-depth formula searcher and write a formula file",
	Long: `Search enumerates short generator sequences ("formulas") by
bounded-depth DFS with equivalence pruning, then augments the result by
conjugation and symmetry (spec.md §4.3/§4.6), and writes the resulting
library in the dot-joined move-text file format (spec.md §6).

For --family cube this writes two files, "<out>.normal.txt" and
"<out>.rainbow.txt". For wreath/globe it writes a single "<out>.txt".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		family, _ := cmd.Flags().GetString("family")
		out, _ := cmd.Flags().GetString("out")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		dbPath, _ := cmd.Flags().GetString("db")

		var db *formuladb.DB
		if dbPath != "" {
			var err error
			db, err = formuladb.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
		}

		start := time.Now()
		switch family {
		case "cube":
			order, _ := cmd.Flags().GetInt("order")
			innerBudget, _ := cmd.Flags().GetInt("inner-budget")
			conjDepth, _ := cmd.Flags().GetInt("conjugate-depth")
			costCeiling, _ := cmd.Flags().GetInt("cost-ceiling")
			cfg := cube.SearchConfig{
				Order:             order,
				MaxDepth:          maxDepth,
				MaxInnerBudget:    innerBudget,
				MaxConjugateDepth: conjDepth,
				CostChangeCeiling: costCeiling,
			}
			var result cube.SearchResult
			var err error
			if db != nil {
				result, err = db.LoadOrSearchCube(cfg)
			} else {
				result = cube.SearchFormulas(cfg)
			}
			if err != nil {
				return err
			}
			if err := cube.SaveFormulasToFile(out+".normal.txt", result.Normal); err != nil {
				return err
			}
			if err := cube.SaveFormulasToFile(out+".rainbow.txt", result.Rainbow); err != nil {
				return err
			}
			fmt.Printf("searched order %d cube in %s: %s normal, %s rainbow formulas\n",
				order, humanize.RelTime(start, time.Now(), "", ""),
				humanize.Comma(int64(len(result.Normal))), humanize.Comma(int64(len(result.Rainbow))))
		case "wreath":
			size, _ := cmd.Flags().GetInt("order")
			cfg := wreath.SearchConfig{Size: size, MaxDepth: maxDepth}
			var formulas []*wreath.Formula
			var err error
			if db != nil {
				formulas, err = db.LoadOrSearchWreath(cfg)
			} else {
				formulas = wreath.SearchFormulas(cfg).Formulas
			}
			if err != nil {
				return err
			}
			if err := saveWreathFormulas(out+".txt", formulas); err != nil {
				return err
			}
			fmt.Printf("searched size %d wreath in %s: %s formulas\n",
				size, humanize.RelTime(start, time.Now(), "", ""), humanize.Comma(int64(len(formulas))))
		case "globe":
			bands, _ := cmd.Flags().GetInt("bands")
			width, _ := cmd.Flags().GetInt("width")
			colors, _ := cmd.Flags().GetInt("colors")
			if colors <= 0 {
				colors = 2 * width
			}
			cfg := globe.SearchConfig{Height: 2 * bands, Width: width, NColors: colors, MaxDepth: maxDepth}
			var formulas []*globe.Formula
			var err error
			if db != nil {
				formulas, err = db.LoadOrSearchGlobe(cfg)
			} else {
				formulas = globe.SearchFormulas(cfg).Formulas
			}
			if err != nil {
				return err
			}
			if err := saveGlobeFormulas(out+".txt", formulas); err != nil {
				return err
			}
			fmt.Printf("searched %dx%d globe in %s: %s formulas\n",
				2*bands, width, humanize.RelTime(start, time.Now(), "", ""), humanize.Comma(int64(len(formulas))))
		default:
			return fmt.Errorf("%w: unknown family %q (want cube, wreath, or globe)", xerr.InvalidInput, family)
		}
		return nil
	},
}

func saveWreathFormulas(path string, formulas []*wreath.Formula) error {
	return saveFormulaTexts(path, formulaStrings(formulas))
}

func saveGlobeFormulas(path string, formulas []*globe.Formula) error {
	return saveFormulaTexts(path, formulaStrings(formulas))
}

func init() {
	searchCmd.Flags().String("family", "cube", "puzzle family: cube, wreath, or globe")
	searchCmd.Flags().String("out", "formulas", "output path prefix")
	searchCmd.Flags().Int("max-depth", 6, "maximum formula move count (D)")
	searchCmd.Flags().IntP("order", "n", 7, "cube order or wreath size")
	searchCmd.Flags().Int("inner-budget", 4, "cube inner-rotation budget (K)")
	searchCmd.Flags().Int("conjugate-depth", 1, "cube conjugation augmentation rounds (C)")
	searchCmd.Flags().Int("cost-ceiling", 0, "cube cost*changes ceiling (0 disables)")
	searchCmd.Flags().Int("bands", 1, "globe band count (height = 2*bands)")
	searchCmd.Flags().Int("width", 8, "globe band width")
	searchCmd.Flags().Int("colors", 0, "globe color count (default 2*width)")
	searchCmd.Flags().String("db", "", "sqlite formula cache path (default: always re-search)")
}
