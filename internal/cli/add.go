package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/requesthub/internal/app"
	"github.com/example/requesthub/internal/models"
)

// AddCmd returns the add command.
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new resource request",
		Long: `Add a new resource request for a scholar.

Examples:
  requesthub add --scholar "Aisha Thompson" --type "Laptop replacement" --priority high
  requesthub add --scholar "Miguel Santos" --type "Textbook voucher" --needed-by 2026-02-16 --owner Operations`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scholar, _ := cmd.Flags().GetString("scholar")
			requestType, _ := cmd.Flags().GetString("type")
			priority, _ := cmd.Flags().GetString("priority")
			status, _ := cmd.Flags().GetString("status")
			neededBy, _ := cmd.Flags().GetString("needed-by")
			owner, _ := cmd.Flags().GetString("owner")
			channel, _ := cmd.Flags().GetString("channel")
			notes, _ := cmd.Flags().GetString("notes")

			input := models.RequestInput{
				ScholarName: scholar,
				RequestType: requestType,
				Priority:    priority,
				Status:      status,
				NeededBy:    parseDate(neededBy),
				Owner:       optional(owner),
				Channel:     optional(channel),
				Notes:       optional(notes),
			}

			return withService(func(ctx context.Context, svc *app.RequestService) error {
				id, err := svc.Add(ctx, input)
				if err != nil {
					return err
				}
				fmt.Printf("Added request %s.\n", id)
				return nil
			})
		},
	}

	cmd.Flags().String("scholar", "", "Scholar the request is raised for (required)")
	cmd.Flags().String("type", "", "Request category, e.g. \"Laptop replacement\" (required)")
	cmd.Flags().String("priority", "medium", "Priority (low|medium|high)")
	cmd.Flags().String("status", "open", "Status (open|in_progress|fulfilled|closed)")
	cmd.Flags().String("needed-by", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("owner", "", "Responsible party or team")
	cmd.Flags().String("channel", "", "Intake channel, e.g. email")
	cmd.Flags().String("notes", "", "Free-form notes")

	return cmd
}

// parseDate accepts YYYY-MM-DD; anything else (including empty) is
// treated as no due date.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
