package cli

import (
	"fmt"

	"github.com/santa23kit/solver/internal/cfen"
	"github.com/santa23kit/solver/internal/cube"
	"github.com/santa23kit/solver/internal/kaggle"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a cube's current state",
	Long: `Show prints a cube state, either solved, loaded from a CFEN string,
or loaded from a Kaggle semicolon-separated coloring string.

Examples:
  santa23 show --order 4
  santa23 show --cfen "3:6|0*9/1*9/2*9/3*9/4*9/5*9"
  santa23 show --order 3 --kaggle "A;A;A;A;A;A;A;A;A;B;B;..."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, _ := cmd.Flags().GetInt("order")
		paletteStr, _ := cmd.Flags().GetString("palette")
		cfenStr, _ := cmd.Flags().GetString("cfen")
		kaggleStr, _ := cmd.Flags().GetString("kaggle")
		ascii, _ := cmd.Flags().GetBool("ascii")

		palette, err := parsePalette(paletteStr)
		if err != nil {
			return err
		}

		var c *cube.Cube
		switch {
		case cfenStr != "":
			st, err := cfen.Parse(cfenStr)
			if err != nil {
				return err
			}
			c = st.ToCube()
		case kaggleStr != "":
			labels := kaggle.ParseColoring(kaggleStr)
			colors, err := labelsToColors(labels)
			if err != nil {
				return err
			}
			c = cube.NewCube(order, palette)
			if err := c.ReadKaggleColoring(colors); err != nil {
				return err
			}
		default:
			c = newSolvedCube(order, palette)
		}

		if ascii {
			fmt.Print(c.Display())
		} else {
			fmt.Println(cfen.FromCube(c).String())
		}
		return nil
	},
}

// labelsToColors maps Kaggle alphabetic color labels ("A","B",...) to
// dense Color indices in first-seen order, matching how competition
// colorings name classes without a fixed global alphabet.
func labelsToColors(labels []string) ([]cube.Color, error) {
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
	return out, nil
}

func init() {
	showCmd.Flags().IntP("order", "n", 3, "cube order (side length)")
	showCmd.Flags().StringP("palette", "p", "normal", "cube palette: normal or rainbow")
	showCmd.Flags().String("cfen", "", "state as a CFEN string")
	showCmd.Flags().String("kaggle", "", "state as a Kaggle semicolon-separated coloring string")
	showCmd.Flags().Bool("ascii", false, "print an unfolded ASCII diagram instead of CFEN")
}
