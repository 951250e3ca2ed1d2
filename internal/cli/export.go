package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/requesthub/internal/app"
)

// ExportCmd returns the export command.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export resource requests to CSV",
		Long: `Export resource requests to a CSV file with full field fidelity.

Examples:
  requesthub export
  requesthub export --status open --path open-requests.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := requestFilterFromFlags(cmd)
			if err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("path")
			if path == "" {
				path = fmt.Sprintf("resource-requests-%s.csv", time.Now().Format("20060102-1504"))
			}

			return withService(func(ctx context.Context, svc *app.RequestService) error {
				count, abs, err := svc.Export(ctx, filter, path)
				if err != nil {
					return err
				}
				fmt.Printf("Exported %d requests to %s.\n", count, abs)
				return nil
			})
		},
	}

	cmd.Flags().String("status", "", "Filter by status (open|in_progress|fulfilled|closed)")
	cmd.Flags().String("priority", "", "Filter by priority (low|medium|high)")
	cmd.Flags().Int("limit", 200, "Maximum rows to export")
	cmd.Flags().String("path", "", "Output file (default resource-requests-<stamp>.csv)")

	return cmd
}
