package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
)

// UnassignCmd creates the unassign command
func UnassignCmd(getApp func() *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <event-id> <volunteer-id>",
		Short: "Remove a volunteer from an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if err := services.Unassign(app.Ctx, app.Store, app.Logger, args[1], args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Unassigned %s from %s\n", args[1], args[0])
			return nil
		},
	}
}
