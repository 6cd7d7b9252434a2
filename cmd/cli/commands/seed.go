package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SeedCmd creates the seed command
func SeedCmd(getApp func() *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load seed data into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if err := app.Store.SeedIfEmpty(app.Ctx); err != nil {
				return err
			}

			events, err := app.Store.Events(app.Ctx)
			if err != nil {
				return err
			}
			volunteers, err := app.Store.Volunteers(app.Ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Store ready: %d events, %d volunteers\n\n", len(events), len(volunteers))
			return nil
		},
	}
}
