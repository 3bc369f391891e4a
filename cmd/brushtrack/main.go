package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/brushtrack/brushtrack/adapter/cli"
	"github.com/brushtrack/brushtrack/adapter/cli/day"
	"github.com/brushtrack/brushtrack/adapter/cli/insights"
	"github.com/brushtrack/brushtrack/internal/app"
	"github.com/brushtrack/brushtrack/pkg/config"
	"github.com/brushtrack/brushtrack/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		// In development without .env, use defaults
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			// In development, allow the CLI to run without a database so
			// help and version still work.
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		cli.SetApp(&cli.App{
			ToggleTaskHandler:     container.ToggleTaskHandler,
			SetReflectionHandler:  container.SetReflectionHandler,
			GetDayHandler:         container.GetDayHandler,
			GetStreaksHandler:     container.GetStreaksHandler,
			GetInsightsHandler:    container.GetInsightsHandler,
			GetHealthScoreHandler: container.GetHealthScoreHandler,
			CurrentUserID:         container.CurrentUserID,
		})
	}

	cli.AddCommand(day.Cmd)
	cli.AddCommand(insights.Cmd)

	cli.Execute()
}
