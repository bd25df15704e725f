package cli

import (
	"github.com/santa23kit/solver/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP job API",
	Long: `Serve starts the job-submission HTTP API: POST /api/jobs queues a
solve request, GET /api/jobs/{id} polls its status, and GET /api/health
reports liveness. Each job runs on its own worker goroutine against the
same cube/wreath/globe solvers the CLI's solve command uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		formulaDir, _ := cmd.Flags().GetString("formulas-dir")
		srv := web.NewServer(formulaDir)
		return srv.Start(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	serveCmd.Flags().String("formulas-dir", "formulas", "directory of formula library files, named as batch expects")
}
