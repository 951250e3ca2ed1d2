package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/requesthub/internal/cli"
	"github.com/example/requesthub/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "requesthub",
		Short:   "Group Scholar Resource Request Hub",
		Version: version.String(),
		Long: `requesthub tracks resource requests raised on behalf of scholars
(equipment, financial aid, transit passes) through their lifecycle,
and lets operators triage, report on, and export that data.

Environment:
  GS_DB_HOST / GS_DB_PORT / GS_DB_USER / GS_DB_PASSWORD / GS_DB_NAME
  (falls back to PGHOST/PGPORT/PGUSER/PGPASSWORD/PGDATABASE)
  LOG_LEVEL (debug|info|warn|error, default info)`,
	}

	rootCmd.AddCommand(cli.InitDBCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.TriageCmd())
	rootCmd.AddCommand(cli.UpdateStatusCmd())
	rootCmd.AddCommand(cli.StatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
