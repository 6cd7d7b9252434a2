package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
)

// ListEventsCmd creates the listEvents command
func ListEventsCmd(getApp func() *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEvents",
		Short: "List all active events",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			events, err := services.ListEvents(app.Ctx, app.Store)
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println("\nNo events found.")
				return nil
			}

			fmt.Printf("\nFound %d event(s):\n\n", len(events))
			for _, e := range events {
				count, err := app.Store.CountAssigned(app.Ctx, e.ID)
				if err != nil {
					return err
				}

				tod := ""
				if e.TimeOfDay != "" {
					tod = " " + e.TimeOfDay
				}
				capacity := ""
				if e.Capacity != nil {
					capacity = fmt.Sprintf("/%d", *e.Capacity)
				}

				fmt.Printf("  %s  %s%s  [%s]  %s\n", e.ID, e.Date, tod, e.Urgency, e.Name)
				fmt.Printf("      %s | skills: %s | assigned: %d%s\n",
					e.Location, strings.Join(e.RequiredSkills, ", "), count, capacity)
			}
			fmt.Println()
			return nil
		},
	}
}
