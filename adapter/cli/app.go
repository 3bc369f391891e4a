package cli

import (
	habitCommands "github.com/brushtrack/brushtrack/internal/habits/application/commands"
	habitQueries "github.com/brushtrack/brushtrack/internal/habits/application/queries"
	insightQueries "github.com/brushtrack/brushtrack/internal/insights/application/queries"
	"github.com/google/uuid"
)

// App holds the CLI application dependencies.
type App struct {
	// Command Handlers
	ToggleTaskHandler    *habitCommands.ToggleTaskHandler
	SetReflectionHandler *habitCommands.SetReflectionHandler

	// Query Handlers
	GetDayHandler         *habitQueries.GetDayHandler
	GetStreaksHandler     *habitQueries.GetStreaksHandler
	GetInsightsHandler    *insightQueries.GetInsightsHandler
	GetHealthScoreHandler *insightQueries.GetHealthScoreHandler

	// Current user
	CurrentUserID uuid.UUID
}

var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
