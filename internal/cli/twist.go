package cli

import (
	"fmt"

	"github.com/santa23kit/solver/internal/cfen"
	"github.com/santa23kit/solver/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply a move or formula text to a cube and print the result",
	Long: `Twist applies a dot-joined move sequence (move-text syntax, e.g.
"f1.d0.-r0.-f1") to a cube and prints the resulting state as CFEN.

Examples:
  santa23 twist "r0"
  santa23 twist --order 5 --palette rainbow "f1.d0.-r0.-f1"
  santa23 twist --cfen "3:6|0*9/1*9/2*9/3*9/4*9/5*9" "r0"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, _ := cmd.Flags().GetInt("order")
		paletteStr, _ := cmd.Flags().GetString("palette")
		start, _ := cmd.Flags().GetString("cfen")

		palette, err := parsePalette(paletteStr)
		if err != nil {
			return err
		}

		var c *cube.Cube
		if start != "" {
			st, err := cfen.Parse(start)
			if err != nil {
				return err
			}
			c = st.ToCube()
		} else {
			c = newSolvedCube(order, palette)
		}

		f, err := cube.ParseFormula(args[0])
		if err != nil {
			return err
		}
		c.RotateMoves(f.Moves)

		fmt.Println(cfen.FromCube(c).String())
		return nil
	},
}

func init() {
	twistCmd.Flags().IntP("order", "n", 3, "cube order (side length)")
	twistCmd.Flags().StringP("palette", "p", "normal", "cube palette: normal or rainbow")
	twistCmd.Flags().String("cfen", "", "starting state as a CFEN string (default: solved)")
}
