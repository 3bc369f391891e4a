package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	habitCommands "github.com/brushtrack/brushtrack/internal/habits/application/commands"
	habitQueries "github.com/brushtrack/brushtrack/internal/habits/application/queries"
	habitPersistence "github.com/brushtrack/brushtrack/internal/habits/infrastructure/persistence"
	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
	insightQueries "github.com/brushtrack/brushtrack/internal/insights/application/queries"
	"github.com/brushtrack/brushtrack/internal/notifications/application/subscribers"
	"github.com/brushtrack/brushtrack/internal/shared/infrastructure/database"
	"github.com/brushtrack/brushtrack/internal/shared/infrastructure/eventbus"
	"github.com/brushtrack/brushtrack/internal/shared/infrastructure/migrations"
	"github.com/brushtrack/brushtrack/pkg/config"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database. Exactly one of SQLiteDB/PostgresPool is set, per DBDriver.
	DBDriver     database.Driver
	SQLiteDB     *sql.DB
	PostgresPool *pgxpool.Pool

	// Repositories
	HistoryRepo habitsDomain.Repository

	// Event bus
	EventPublisher     eventbus.Publisher
	ReminderSuppressor *subscribers.ReminderSuppressor

	// Current user
	CurrentUserID uuid.UUID

	// Command handlers
	ToggleTaskHandler    *habitCommands.ToggleTaskHandler
	SetReflectionHandler *habitCommands.SetReflectionHandler

	// Query handlers
	GetDayHandler         *habitQueries.GetDayHandler
	GetStreaksHandler     *habitQueries.GetStreaksHandler
	GetInsightsHandler    *insightQueries.GetInsightsHandler
	GetHealthScoreHandler *insightQueries.GetHealthScoreHandler
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config:   cfg,
		Logger:   logger,
		DBDriver: database.DetectDriver(cfg.DatabaseURL),
	}

	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", cfg.UserID, err)
	}
	c.CurrentUserID = userID

	switch c.DBDriver {
	case database.DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = database.DefaultSQLitePath()
		}
		db, err := database.OpenSQLite(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		c.SQLiteDB = db
		c.HistoryRepo = habitPersistence.NewSQLiteHistoryRepository(db)
		logger.Info("connected to database", "driver", c.DBDriver, "path", path)

	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL, cfg.MaxConns)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		c.PostgresPool = pool
		c.HistoryRepo = habitPersistence.NewPostgresHistoryRepository(pool)
		logger.Info("connected to database", "driver", c.DBDriver)

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.DBDriver)
	}

	if err := c.initEventBus(logger); err != nil {
		c.closeDB()
		return nil, err
	}

	c.initHandlers()
	return c, nil
}

// initEventBus wires the event publisher. With a broker URL configured the
// publisher goes over RabbitMQ behind a circuit breaker; otherwise events are
// dispatched synchronously to in-process consumers.
func (c *Container) initEventBus(logger *slog.Logger) error {
	c.ReminderSuppressor = subscribers.NewReminderSuppressor(logger)

	if c.Config.RabbitMQURL != "" {
		rabbit, err := eventbus.NewRabbitMQPublisher(c.Config.RabbitMQURL, logger)
		if err != nil {
			if !c.Config.IsDevelopment() {
				return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
			}
			logger.Warn("RabbitMQ not available, falling back to in-process event bus", "error", err)
		} else {
			c.EventPublisher = eventbus.NewBreakerPublisher(rabbit, logger)
			logger.Info("connected to RabbitMQ")
			return nil
		}
	}

	bus := eventbus.NewInProcessEventBus(logger)
	bus.RegisterConsumer(c.ReminderSuppressor)
	c.EventPublisher = bus
	return nil
}

func (c *Container) initHandlers() {
	c.ToggleTaskHandler = habitCommands.NewToggleTaskHandler(c.HistoryRepo, c.EventPublisher)
	c.SetReflectionHandler = habitCommands.NewSetReflectionHandler(c.HistoryRepo)

	c.GetDayHandler = habitQueries.NewGetDayHandler(c.HistoryRepo)
	c.GetStreaksHandler = habitQueries.NewGetStreaksHandler(c.HistoryRepo)
	c.GetInsightsHandler = insightQueries.NewGetInsightsHandler(c.HistoryRepo)
	c.GetHealthScoreHandler = insightQueries.NewGetHealthScoreHandler(c.HistoryRepo)
}

func (c *Container) closeDB() {
	if c.SQLiteDB != nil {
		if err := c.SQLiteDB.Close(); err != nil {
			c.Logger.Warn("error closing database", "error", err)
		}
		c.SQLiteDB = nil
	}
	if c.PostgresPool != nil {
		c.PostgresPool.Close()
		c.PostgresPool = nil
	}
}

// Close gracefully shuts down all connections.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("error closing event publisher", "error", err)
		}
	}
	c.closeDB()
	c.Logger.Info("container closed")
}
