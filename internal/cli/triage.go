package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/requesthub/internal/app"
	"github.com/example/requesthub/internal/models"
)

// TriageCmd returns the triage command.
func TriageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Show open requests due within a window",
		Long: `Show open requests whose due date falls within the window, soonest
first. Overdue requests that are still open are included - they need
attention most.

Examples:
  requesthub triage
  requesthub triage --days 3 --priority high
  requesthub triage --owner Casework --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.TriageFilter{}
			filter.WindowDays, _ = cmd.Flags().GetInt("days")
			filter.Limit, _ = cmd.Flags().GetInt("limit")

			if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
				priority, ok := models.ParsePriority(raw)
				if !ok {
					return fmt.Errorf("unknown priority %q (expected low|medium|high)", raw)
				}
				filter.Priority = &priority
			}
			if owner, _ := cmd.Flags().GetString("owner"); owner != "" {
				filter.Owner = &owner
			}

			return withService(func(ctx context.Context, svc *app.RequestService) error {
				records, err := svc.Triage(ctx, filter)
				if err != nil {
					return err
				}
				printTriage(records)
				return nil
			})
		},
	}

	cmd.Flags().Int("days", 7, "Window size in days from today")
	cmd.Flags().String("priority", "", "Filter by priority (low|medium|high)")
	cmd.Flags().String("owner", "", "Filter by owner (case-insensitive)")
	cmd.Flags().Int("limit", 25, "Maximum rows to return")

	return cmd
}
