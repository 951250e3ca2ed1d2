package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/requesthub/internal/app"
)

// StatsCmd returns the stats command.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics",
		Long:  "Show request counts grouped by status and priority, and the average age of open requests.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc *app.RequestService) error {
				stats, err := svc.Stats(ctx)
				if err != nil {
					return err
				}
				printStats(stats)
				return nil
			})
		},
	}
}
