package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
)

// HistoryCmd creates the history command
func HistoryCmd(getApp func() *AppContext) *cobra.Command {
	var volunteerID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show logged volunteer hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			var entries []model.HistoryEntry
			var err error
			if volunteerID != "" {
				entries, err = services.HistoryForVolunteer(app.Ctx, app.Store, volunteerID)
			} else {
				entries, err = services.ListHistory(app.Ctx, app.Store)
			}
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("\nNo history entries found.")
				return nil
			}

			var total float64
			fmt.Printf("\nFound %d entr(ies):\n\n", len(entries))
			for _, entry := range entries {
				fmt.Printf("  #%d  %s  %-30s  %.1fh", entry.ID, entry.Date, entry.Event, entry.Hours)
				if entry.VolunteerID != "" {
					fmt.Printf("  (%s)", entry.VolunteerID)
				}
				fmt.Println()
				total += entry.Hours
			}
			fmt.Printf("\nTotal: %.1f hours\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&volunteerID, "volunteer", "", "only show entries for this volunteer")

	return cmd
}
