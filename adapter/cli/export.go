package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	habitQueries "github.com/brushtrack/brushtrack/internal/habits/application/queries"
	"github.com/brushtrack/brushtrack/internal/habits/domain"
	insightQueries "github.com/brushtrack/brushtrack/internal/insights/application/queries"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportDays   int
)

// exportReport is the read-only report consumed by external reporting tools.
type exportReport struct {
	GeneratedAt time.Time                      `json:"generated_at"`
	Days        []habitQueries.DayDTO          `json:"days"`
	Streaks     *habitQueries.StreaksDTO       `json:"streaks"`
	Insights    *insightQueries.InsightsDTO    `json:"insights"`
	HealthScore *insightQueries.HealthScoreDTO `json:"health_score"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history, streaks, insights and health score as JSON",
	Long: `Export a read-only JSON report for external reporting tools.

Examples:
  brushtrack export                # last 30 days to stdout
  brushtrack export -o report.json # write to file
  brushtrack export --days 90      # widen the day window`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.GetDayHandler == nil {
			fmt.Println("Export requires an initialized database.")
			return nil
		}

		today, err := domain.NewDateKey(time.Now())
		if err != nil {
			return err
		}

		report := exportReport{GeneratedAt: time.Now()}

		key := today
		for i := 0; i < exportDays; i++ {
			dto, err := app.GetDayHandler.Handle(cmd.Context(), habitQueries.GetDayQuery{
				UserID: app.CurrentUserID,
				Date:   key,
			})
			if err != nil {
				return err
			}
			report.Days = append(report.Days, *dto)
			key = key.Previous()
		}

		report.Streaks, err = app.GetStreaksHandler.Handle(cmd.Context(), habitQueries.GetStreaksQuery{
			UserID: app.CurrentUserID,
			Today:  today,
		})
		if err != nil {
			return err
		}
		report.Insights, err = app.GetInsightsHandler.Handle(cmd.Context(), insightQueries.GetInsightsQuery{
			UserID: app.CurrentUserID,
		})
		if err != nil {
			return err
		}
		report.HealthScore, err = app.GetHealthScoreHandler.Handle(cmd.Context(), insightQueries.GetHealthScoreQuery{
			UserID: app.CurrentUserID,
			Today:  today,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Printf("Exported to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&exportDays, "days", 30, "number of trailing days to include")
	rootCmd.AddCommand(exportCmd)
}
