package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/matching"
	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
)

// MatchCmd creates the match command
func MatchCmd(getApp func() *AppContext) *cobra.Command {
	var includeUnavailable bool

	cmd := &cobra.Command{
		Use:   "match <event-id>",
		Short: "Rank volunteers against an event's needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			result, err := services.MatchCandidates(app.Ctx, app.Store, app.Logger, args[0], includeUnavailable)
			if err != nil {
				return err
			}

			e := result.Event
			fmt.Printf("\n%s — %s %s (%s urgency)\n", e.Name, e.Date, e.TimeOfDay, e.Urgency)
			fmt.Printf("Required skills: %s\n\n", strings.Join(e.RequiredSkills, ", "))

			fmt.Printf("Best matches (%d):\n", len(result.Ranking.BestMatches))
			printCandidates(result.Ranking.BestMatches)

			if includeUnavailable {
				fmt.Printf("\nOthers (%d):\n", len(result.Ranking.Others))
				printCandidates(result.Ranking.Others)
			}

			if len(result.Assigned) > 0 {
				fmt.Printf("\nAlready assigned (%d):\n", len(result.Assigned))
				for _, v := range result.Assigned {
					fmt.Printf("  %s  %s\n", v.ID, v.Name)
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeUnavailable, "include-unavailable", false, "also rank volunteers who fail the availability gate")

	return cmd
}

func printCandidates(candidates []matching.Candidate) {
	if len(candidates) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, c := range candidates {
		fmt.Printf("  %4d  %s  %s (skill fit %.0f%%)\n",
			c.Score, c.Volunteer.ID, c.Volunteer.Name, c.OverlapPct*100)
	}
}
