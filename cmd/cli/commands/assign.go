package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
)

// AssignCmd creates the assign command
func AssignCmd(getApp func() *AppContext) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "assign <event-id> <volunteer-id>...",
		Short: "Assign one or more volunteers to an event",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if hours == 0 {
				hours = app.Cfg.DefaultHours
			}

			result, err := services.AssignVolunteers(app.Ctx, app.Store, app.Logger, app.Notifier, args[0], args[1:], hours)
			if err != nil {
				return err
			}

			if len(result.Assigned) == 0 {
				fmt.Println("\nNo volunteers assigned (already assigned or event at capacity).")
				return nil
			}

			fmt.Printf("\n✓ Assigned %d volunteer(s) to %s: %s\n", len(result.Assigned), result.EventID, strings.Join(result.Assigned, ", "))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "hours to credit per volunteer (defaults to the configured value)")

	return cmd
}
