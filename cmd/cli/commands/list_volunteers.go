package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
)

// ListVolunteersCmd creates the listVolunteers command
func ListVolunteersCmd(getApp func() *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listVolunteers",
		Short: "List all volunteers and their skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			volunteers, err := services.ListVolunteers(app.Ctx, app.Store)
			if err != nil {
				return err
			}

			if len(volunteers) == 0 {
				fmt.Println("\nNo volunteers found.")
				return nil
			}

			fmt.Printf("\nFound %d volunteer(s):\n\n", len(volunteers))
			for _, v := range volunteers {
				fmt.Printf("  %s  %s\n", v.ID, v.Name)
				fmt.Printf("      skills: %s\n", strings.Join(v.Skills, ", "))
				if len(v.PreferredTimes) > 0 {
					fmt.Printf("      prefers: %s\n", strings.Join(v.PreferredTimes, ", "))
				}
			}
			fmt.Println()
			return nil
		},
	}
}
