package queries

import (
	"context"
	"time"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
)

// GetDayQuery contains the parameters for reading one day's record.
type GetDayQuery struct {
	UserID uuid.UUID
	Date   domain.DateKey
}

// DayDTO is the read model for one day. The notification scheduler queries
// it to decide whether to suppress reminders.
type DayDTO struct {
	Date         string `json:"date"`
	Morning      bool   `json:"morning"`
	Night        bool   `json:"night"`
	Floss        bool   `json:"floss"`
	Reflection   string `json:"reflection,omitempty"`
	IsComplete   bool   `json:"is_complete"`
	IsRecoverDay bool   `json:"is_recovery_day"`
}

// GetDayHandler handles the GetDayQuery.
type GetDayHandler struct {
	historyRepo domain.Repository
}

// NewGetDayHandler creates a new GetDayHandler.
func NewGetDayHandler(historyRepo domain.Repository) *GetDayHandler {
	return &GetDayHandler{historyRepo: historyRepo}
}

// Handle executes the GetDayQuery. A day with no record yet is a valid
// all-unset day, not an error.
func (h *GetDayHandler) Handle(ctx context.Context, query GetDayQuery) (*DayDTO, error) {
	history, err := h.historyRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = domain.NewHistory(query.UserID)
	}

	rec, _ := history.Record(query.Date)
	return &DayDTO{
		Date:         query.Date.String(),
		Morning:      rec.Morning(),
		Night:        rec.Night(),
		Floss:        rec.Floss(),
		Reflection:   rec.Reflection(),
		IsComplete:   rec.IsComplete(),
		IsRecoverDay: history.IsRecoveryDay(query.Date, time.Now()),
	}, nil
}
