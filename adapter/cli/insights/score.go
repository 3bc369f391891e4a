package insights

import (
	"fmt"
	"time"

	"github.com/brushtrack/brushtrack/adapter/cli"
	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/brushtrack/brushtrack/internal/insights/application/queries"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the composite habit health score",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetHealthScoreHandler == nil {
			fmt.Println("Health score requires an initialized database.")
			return nil
		}

		today, err := habitsDomain.NewDateKey(time.Now())
		if err != nil {
			return err
		}

		dto, err := app.GetHealthScoreHandler.Handle(cmd.Context(), queries.GetHealthScoreQuery{
			UserID: app.CurrentUserID,
			Today:  today,
		})
		if err != nil {
			return fmt.Errorf("failed to compute health score: %w", err)
		}

		fmt.Printf("Health score: %d/100\n", dto.Total)
		fmt.Printf("  completion:  %d\n", dto.Completion)
		fmt.Printf("  consistency: %d\n", dto.Consistency)
		fmt.Printf("  balance:     %d\n", dto.Balance)
		fmt.Printf("  improvement: %d\n", dto.Improvement)
		fmt.Printf("Streak: %d (longest %d)\n", dto.Streak, dto.MaxStreak)
		return nil
	},
}
