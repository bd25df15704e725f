// Package cli implements the santa23 command-line front-end: one file
// per subcommand, each registering a package-level *cobra.Command via
// init(), wired into rootCmd here. This is the collaborator surface
// spec.md §1 excludes from the core engine itself.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "santa23",
	Short:   "Solver suite for the Santa-2023 twisty-puzzle family",
	Long:    `santa23 searches formula libraries and runs the beam solver over cube, wreath, and globe puzzles from the Santa-2023 Kaggle competition.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(remapCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}
