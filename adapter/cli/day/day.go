// Package day contains the CLI commands operating on a single day's record.
package day

import (
	"time"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for day operations.
var Cmd = &cobra.Command{
	Use:   "day",
	Short: "Record and inspect daily dental-care tasks",
}

func init() {
	Cmd.AddCommand(toggleCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(reflectCmd)
}

// resolveDate turns the --date flag into a date key, defaulting to today.
func resolveDate(flag string) (domain.DateKey, error) {
	if flag == "" {
		return domain.NewDateKey(time.Now())
	}
	return domain.ParseDateKey(flag)
}
