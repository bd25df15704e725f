package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/santa23kit/solver/internal/cube"
	"github.com/spf13/cobra"
)

var remapCmd = &cobra.Command{
	Use:   "remap",
	Short: "Specialize a reference-order cube formula file onto a larger order",
	Long: `Remap applies the slice-remapping mechanism of spec.md §4.4 to every
formula in a reference-order formula file, enumerating all valid slice
maps and writing every successfully specialized variant. Scale-stable
formulas (same facelet-change cardinality at every reached order) are
reported separately, since the solver prefers them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		refOrder, _ := cmd.Flags().GetInt("ref-order")
		targetOrder, _ := cmd.Flags().GetInt("target-order")

		formulas, err := cube.LoadFormulasFromFile(in)
		if err != nil {
			return err
		}
		for _, f := range formulas {
			f.Precompute(refOrder)
		}

		specialized := cube.RemapAll(formulas, refOrder, targetOrder)
		stable := 0
		maps := cube.EnumerateSliceMaps(refOrder, targetOrder)
		for _, f := range formulas {
			for _, m := range maps {
				if m.IsScaleStable(f) {
					stable++
				}
			}
		}

		if err := cube.SaveFormulasToFile(out, specialized); err != nil {
			return err
		}
		fmt.Printf("remapped %s reference formulas onto order %d: %s specialized variants (%s scale-stable)\n",
			humanize.Comma(int64(len(formulas))), targetOrder,
			humanize.Comma(int64(len(specialized))), humanize.Comma(int64(stable)))
		return nil
	},
}

func init() {
	remapCmd.Flags().String("in", "", "reference-order formula file (required)")
	remapCmd.Flags().String("out", "remapped.txt", "output formula file")
	remapCmd.Flags().Int("ref-order", 7, "reference order the input formulas were searched at")
	remapCmd.Flags().Int("target-order", 11, "target order to specialize onto")
	remapCmd.MarkFlagRequired("in")
}
