package day

import (
	"fmt"

	"github.com/brushtrack/brushtrack/adapter/cli"
	"github.com/brushtrack/brushtrack/internal/habits/application/queries"
	"github.com/spf13/cobra"
)

var showDate string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day's record",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetDayHandler == nil {
			fmt.Println("Viewing a day requires an initialized database.")
			return nil
		}

		date, err := resolveDate(showDate)
		if err != nil {
			return err
		}

		dto, err := app.GetDayHandler.Handle(cmd.Context(), queries.GetDayQuery{
			UserID: app.CurrentUserID,
			Date:   date,
		})
		if err != nil {
			return fmt.Errorf("failed to load day: %w", err)
		}

		fmt.Printf("%s\n", dto.Date)
		fmt.Printf("  morning: %s\n", mark(dto.Morning))
		fmt.Printf("  night:   %s\n", mark(dto.Night))
		fmt.Printf("  floss:   %s\n", mark(dto.Floss))
		if dto.Reflection != "" {
			fmt.Printf("  note:    %s\n", dto.Reflection)
		}
		if dto.IsComplete {
			fmt.Println("  complete")
		} else if dto.IsRecoverDay {
			fmt.Println("  complete all tasks today to recover yesterday's streak")
		}
		return nil
	},
}

func mark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func init() {
	showCmd.Flags().StringVarP(&showDate, "date", "d", "", "day to show (YYYY-MM-DD, default today)")
}
