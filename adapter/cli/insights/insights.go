// Package insights contains the CLI commands for the read-side projections.
package insights

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for insight operations.
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Behavioral insights and the habit health score",
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(scoreCmd)
}
