package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
)

// SetReflectionCommand attaches a free-text note to a day's record.
type SetReflectionCommand struct {
	UserID uuid.UUID
	Date   domain.DateKey
	Text   string
}

// SetReflectionHandler handles the SetReflectionCommand.
type SetReflectionHandler struct {
	historyRepo domain.Repository
}

// NewSetReflectionHandler creates a new SetReflectionHandler.
func NewSetReflectionHandler(historyRepo domain.Repository) *SetReflectionHandler {
	return &SetReflectionHandler{historyRepo: historyRepo}
}

// Handle executes the SetReflectionCommand.
func (h *SetReflectionHandler) Handle(ctx context.Context, cmd SetReflectionCommand) error {
	history, err := h.historyRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if history == nil {
		history = domain.NewHistory(cmd.UserID)
	}

	history.SetReflection(cmd.Date, strings.TrimSpace(cmd.Text))

	if err := h.historyRepo.Save(ctx, history); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
