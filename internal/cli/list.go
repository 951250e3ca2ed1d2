package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/requesthub/internal/app"
	"github.com/example/requesthub/internal/models"
)

// ListCmd returns the list command.
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resource requests",
		Long: `List resource requests, most recently updated first.

Examples:
  requesthub list
  requesthub list --status open --priority high --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := requestFilterFromFlags(cmd)
			if err != nil {
				return err
			}

			return withService(func(ctx context.Context, svc *app.RequestService) error {
				requests, err := svc.List(ctx, filter)
				if err != nil {
					return err
				}
				printRequests(requests)
				return nil
			})
		},
	}

	cmd.Flags().String("status", "", "Filter by status (open|in_progress|fulfilled|closed)")
	cmd.Flags().String("priority", "", "Filter by priority (low|medium|high)")
	cmd.Flags().Int("limit", 25, "Maximum rows to return")

	return cmd
}

// requestFilterFromFlags reads the shared status/priority/limit flags
// used by list and export.
func requestFilterFromFlags(cmd *cobra.Command) (models.RequestFilter, error) {
	filter := models.RequestFilter{}

	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		status, ok := models.ParseStatus(raw)
		if !ok {
			return filter, fmt.Errorf("unknown status %q (expected open|in_progress|fulfilled|closed)", raw)
		}
		filter.Status = &status
	}
	if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
		priority, ok := models.ParsePriority(raw)
		if !ok {
			return filter, fmt.Errorf("unknown priority %q (expected low|medium|high)", raw)
		}
		filter.Priority = &priority
	}
	filter.Limit, _ = cmd.Flags().GetInt("limit")

	return filter, nil
}
