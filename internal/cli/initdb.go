package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/requesthub/internal/app"
)

// InitDBCmd returns the init-db command.
func InitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the schema, table, and indexes",
		Long:  "Idempotently create the request schema. Safe to run repeatedly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc *app.RequestService) error {
				if err := svc.InitSchema(ctx); err != nil {
					return err
				}
				fmt.Println("Database initialized.")
				return nil
			})
		},
	}
}

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample requests into an empty table",
		Long:  "Ensure the schema and insert demo fixtures when the table is empty. Existing data is never modified.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc *app.RequestService) error {
				inserted, err := svc.Seed(ctx)
				if err != nil {
					return err
				}
				if inserted == 0 {
					fmt.Println("Table already has data; nothing seeded.")
				} else {
					fmt.Printf("Seed data inserted (%d requests).\n", inserted)
				}
				return nil
			})
		},
	}
}
