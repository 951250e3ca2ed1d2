package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/requesthub/internal/app"
)

// UpdateStatusCmd returns the update-status command.
func UpdateStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-status",
		Short: "Move a request to a new lifecycle status",
		Long: `Move a request to a new lifecycle status. An unknown or malformed id
is reported as not found, not an error.

Examples:
  requesthub update-status --id 6f1e... --status fulfilled`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetString("id")
			status, _ := cmd.Flags().GetString("status")

			return withService(func(ctx context.Context, svc *app.RequestService) error {
				updated, err := svc.UpdateStatus(ctx, id, status)
				if err != nil {
					return err
				}
				if updated {
					fmt.Printf("Updated status for %s.\n", id)
				} else {
					fmt.Printf("No request found for %s.\n", id)
				}
				return nil
			})
		},
	}

	cmd.Flags().String("id", "", "Request id (UUID)")
	cmd.Flags().String("status", "", "New status (open|in_progress|fulfilled|closed)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}
