package insights

import (
	"fmt"

	"github.com/brushtrack/brushtrack/adapter/cli"
	"github.com/brushtrack/brushtrack/internal/insights/application/queries"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show gated behavioral insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetInsightsHandler == nil {
			fmt.Println("Insights require an initialized database.")
			return nil
		}

		dto, err := app.GetInsightsHandler.Handle(cmd.Context(), queries.GetInsightsQuery{
			UserID: app.CurrentUserID,
		})
		if err != nil {
			return fmt.Errorf("failed to generate insights: %w", err)
		}

		fmt.Printf("Days tracked:     %d (%d fully complete)\n", dto.TotalDays, dto.CompletedDays)
		fmt.Printf("Completion rate:  %.1f%%\n", dto.CompletionRate)

		if !dto.PatternsReliable {
			fmt.Printf("Patterns withheld: need %d tracked days, have %d\n",
				dto.MinDaysForPatterns, dto.TotalDays)
		} else {
			if dto.MostMissedTask != "" {
				fmt.Printf("Most missed task:    %s\n", dto.MostMissedTask)
			}
			if dto.MostMissedWeekday != "" {
				fmt.Printf("Most missed weekday: %s\n", dto.MostMissedWeekday)
			}
		}

		if !dto.ReflectionsReliable {
			fmt.Printf("Reflection themes withheld: need %d keyword matches\n", dto.MinReflections)
		} else if dto.CommonReflectionKeyword != "" {
			fmt.Printf("Recurring theme:     %q\n", dto.CommonReflectionKeyword)
		}

		if dto.Summary != "" {
			fmt.Printf("\n%s\n", dto.Summary)
		}
		return nil
	},
}
