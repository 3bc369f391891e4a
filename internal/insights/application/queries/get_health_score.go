package queries

import (
	"context"

	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/brushtrack/brushtrack/internal/insights/domain"
	"github.com/google/uuid"
)

// GetHealthScoreQuery contains the parameters for the health score.
type GetHealthScoreQuery struct {
	UserID uuid.UUID
	Today  habitsDomain.DateKey
}

// HealthScoreDTO is the read model for the composite habit health score.
type HealthScoreDTO struct {
	Total       int `json:"total"`
	Completion  int `json:"completion"`
	Consistency int `json:"consistency"`
	Balance     int `json:"balance"`
	Improvement int `json:"improvement"`
	Streak      int `json:"streak"`
	MaxStreak   int `json:"max_streak"`
}

// GetHealthScoreHandler handles the GetHealthScoreQuery.
type GetHealthScoreHandler struct {
	historyRepo habitsDomain.Repository
}

// NewGetHealthScoreHandler creates a new GetHealthScoreHandler.
func NewGetHealthScoreHandler(historyRepo habitsDomain.Repository) *GetHealthScoreHandler {
	return &GetHealthScoreHandler{historyRepo: historyRepo}
}

// Handle executes the GetHealthScoreQuery.
func (h *GetHealthScoreHandler) Handle(ctx context.Context, query GetHealthScoreQuery) (*HealthScoreDTO, error) {
	history, err := h.historyRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = habitsDomain.NewHistory(query.UserID)
	}

	score := domain.CalculateHealthScore(history, query.Today)
	return &HealthScoreDTO{
		Total:       score.Total,
		Completion:  score.Breakdown.Completion,
		Consistency: score.Breakdown.Consistency,
		Balance:     score.Breakdown.Balance,
		Improvement: score.Breakdown.Improvement,
		Streak:      score.Streak,
		MaxStreak:   score.MaxStreak,
	}, nil
}
