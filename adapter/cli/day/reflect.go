package day

import (
	"fmt"
	"strings"

	"github.com/brushtrack/brushtrack/adapter/cli"
	"github.com/brushtrack/brushtrack/internal/habits/application/commands"
	"github.com/spf13/cobra"
)

var reflectDate string

var reflectCmd = &cobra.Command{
	Use:   "reflect [text...]",
	Short: "Attach a free-text reflection to a day",
	Long: `Attach a short note about the day; the insights engine mines
reflections for recurring themes once enough of them exist.

Examples:
  brushtrack day reflect too tired after the late shift
  brushtrack day reflect --date 2026-08-27 travel day, no floss packed`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SetReflectionHandler == nil {
			fmt.Println("Reflections require an initialized database.")
			return nil
		}

		date, err := resolveDate(reflectDate)
		if err != nil {
			return err
		}

		err = app.SetReflectionHandler.Handle(cmd.Context(), commands.SetReflectionCommand{
			UserID: app.CurrentUserID,
			Date:   date,
			Text:   strings.Join(args, " "),
		})
		if err != nil {
			return fmt.Errorf("failed to save reflection: %w", err)
		}

		fmt.Printf("Reflection saved for %s\n", date)
		return nil
	},
}

func init() {
	reflectCmd.Flags().StringVarP(&reflectDate, "date", "d", "", "day to annotate (YYYY-MM-DD, default today)")
}
