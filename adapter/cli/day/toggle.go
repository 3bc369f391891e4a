package day

import (
	"fmt"

	"github.com/brushtrack/brushtrack/adapter/cli"
	"github.com/brushtrack/brushtrack/internal/habits/application/commands"
	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/spf13/cobra"
)

var toggleDate string

var toggleCmd = &cobra.Command{
	Use:   "toggle [task]",
	Short: "Toggle a task for a day",
	Long: `Flip one of the three daily tasks (morning, night, floss).

Examples:
  brushtrack day toggle morning
  brushtrack day toggle floss --date 2026-08-27`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ToggleTaskHandler == nil {
			fmt.Println("Task toggling requires an initialized database.")
			return nil
		}

		date, err := resolveDate(toggleDate)
		if err != nil {
			return err
		}

		result, err := app.ToggleTaskHandler.Handle(cmd.Context(), commands.ToggleTaskCommand{
			UserID: app.CurrentUserID,
			Date:   date,
			Task:   domain.TaskName(args[0]),
		})
		if err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}

		state := "undone"
		if result.Done {
			state = "done"
		}
		fmt.Printf("%s on %s is now %s (%d/3)\n", args[0], result.Date, state, result.DoneCount)
		if result.IsComplete {
			fmt.Printf("Day complete! Current streak: %d (longest %d)\n",
				result.Streaks.Current, result.Streaks.Longest)
		}
		if result.RecoveryConsumed {
			fmt.Println("Streak recovered - yesterday's miss is forgiven.")
		}
		return nil
	},
}

func init() {
	toggleCmd.Flags().StringVarP(&toggleDate, "date", "d", "", "day to toggle (YYYY-MM-DD, default today)")
}
