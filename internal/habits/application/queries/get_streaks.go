package queries

import (
	"context"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
)

// GetStreaksQuery contains the parameters for the streak projection.
type GetStreaksQuery struct {
	UserID uuid.UUID
	Today  domain.DateKey
}

// StreaksDTO is the read model for streaks.
type StreaksDTO struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// GetStreaksHandler handles the GetStreaksQuery.
type GetStreaksHandler struct {
	historyRepo domain.Repository
}

// NewGetStreaksHandler creates a new GetStreaksHandler.
func NewGetStreaksHandler(historyRepo domain.Repository) *GetStreaksHandler {
	return &GetStreaksHandler{historyRepo: historyRepo}
}

// Handle executes the GetStreaksQuery. An empty history yields zeros.
func (h *GetStreaksHandler) Handle(ctx context.Context, query GetStreaksQuery) (*StreaksDTO, error) {
	history, err := h.historyRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return &StreaksDTO{}, nil
	}

	streaks := domain.CalculateStreaks(history, query.Today)
	return &StreaksDTO{Current: streaks.Current, Longest: streaks.Longest}, nil
}
