// Package subscribers reacts to habit events on behalf of the external
// notification scheduler. The scheduler itself lives outside this core; it
// queries the suppressor before firing a reminder.
package subscribers

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/brushtrack/brushtrack/internal/shared/infrastructure/eventbus"
)

// ReminderSuppressor listens for day-completed events and marks those days
// so remaining reminders can be suppressed. Reopening a day lifts the
// suppression again.
type ReminderSuppressor struct {
	suppressed map[habitsDomain.DateKey]bool
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewReminderSuppressor creates a new reminder suppressor.
func NewReminderSuppressor(logger *slog.Logger) *ReminderSuppressor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderSuppressor{
		suppressed: make(map[habitsDomain.DateKey]bool),
		logger:     logger,
	}
}

// EventTypes returns the event types this subscriber handles.
func (s *ReminderSuppressor) EventTypes() []string {
	return []string{"habits.day.completed", "habits.day.reopened"}
}

// dayEvent is the shared shape of the day lifecycle event payloads.
type dayEvent struct {
	Date string `json:"date"`
}

// Handle processes a day lifecycle event.
func (s *ReminderSuppressor) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	var payload dayEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return err
	}
	key, err := habitsDomain.ParseDateKey(payload.Date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch event.RoutingKey {
	case "habits.day.completed":
		s.suppressed[key] = true
		s.logger.Info("reminders suppressed for completed day", "date", key)
	case "habits.day.reopened":
		delete(s.suppressed, key)
		s.logger.Info("reminder suppression lifted", "date", key)
	}
	return nil
}

// IsSuppressed reports whether reminders for the given day should be
// withheld.
func (s *ReminderSuppressor) IsSuppressed(key habitsDomain.DateKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.suppressed[key]
}
