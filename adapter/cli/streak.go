package cli

import (
	"fmt"
	"time"

	"github.com/brushtrack/brushtrack/internal/habits/application/queries"
	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show current and longest streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.GetStreaksHandler == nil {
			fmt.Println("Streaks require an initialized database.")
			return nil
		}

		today, err := domain.NewDateKey(time.Now())
		if err != nil {
			return err
		}

		dto, err := app.GetStreaksHandler.Handle(cmd.Context(), queries.GetStreaksQuery{
			UserID: app.CurrentUserID,
			Today:  today,
		})
		if err != nil {
			return fmt.Errorf("failed to compute streaks: %w", err)
		}

		fmt.Printf("Current streak: %d day(s)\n", dto.Current)
		fmt.Printf("Longest streak: %d day(s)\n", dto.Longest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
