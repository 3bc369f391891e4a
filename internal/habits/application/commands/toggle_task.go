package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/brushtrack/brushtrack/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
)

// ToggleTaskCommand contains the data needed to flip a task for a day.
type ToggleTaskCommand struct {
	UserID uuid.UUID
	Date   domain.DateKey
	Task   domain.TaskName
}

// ToggleTaskResult contains the updated day state after a toggle.
type ToggleTaskResult struct {
	Date             domain.DateKey
	Done             bool
	DoneCount        int
	IsComplete       bool
	Streaks          domain.StreakResult
	RecoveryConsumed bool
}

// ToggleTaskHandler handles the ToggleTaskCommand. It is the sole mutation
// entry point for habit history.
type ToggleTaskHandler struct {
	historyRepo domain.Repository
	publisher   eventbus.Publisher
	now         func() time.Time
}

// NewToggleTaskHandler creates a new ToggleTaskHandler.
func NewToggleTaskHandler(historyRepo domain.Repository, publisher eventbus.Publisher) *ToggleTaskHandler {
	return &ToggleTaskHandler{
		historyRepo: historyRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// WithClock overrides the handler's clock. Used by tests.
func (h *ToggleTaskHandler) WithClock(now func() time.Time) *ToggleTaskHandler {
	h.now = now
	return h
}

// Handle executes the ToggleTaskCommand.
func (h *ToggleTaskHandler) Handle(ctx context.Context, cmd ToggleTaskCommand) (*ToggleTaskResult, error) {
	history, err := h.historyRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = domain.NewHistory(cmd.UserID)
	}

	rec, err := history.ToggleTask(cmd.Date, cmd.Task, h.now())
	if err != nil {
		return nil, err
	}

	if err := h.historyRepo.Save(ctx, history); err != nil {
		return nil, fmt.Errorf("failed to save history: %w", err)
	}

	result := &ToggleTaskResult{
		Date:       cmd.Date,
		Done:       rec.Done(cmd.Task),
		DoneCount:  rec.DoneCount(),
		IsComplete: rec.IsComplete(),
		Streaks:    domain.CalculateStreaks(history, cmd.Date),
	}
	for _, event := range history.DomainEvents() {
		if _, ok := event.(*domain.RecoveryConsumed); ok {
			result.RecoveryConsumed = true
		}
	}

	if err := eventbus.PublishDomainEvents(ctx, h.publisher, history.DomainEvents()); err != nil {
		return nil, fmt.Errorf("failed to publish events: %w", err)
	}
	history.ClearDomainEvents()

	return result, nil
}
