package queries

import (
	"context"

	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/brushtrack/brushtrack/internal/insights/domain"
	"github.com/google/uuid"
)

// GetInsightsQuery contains the parameters for the insights projection.
type GetInsightsQuery struct {
	UserID uuid.UUID
}

// InsightsDTO is the read model for gated behavioral insights.
type InsightsDTO struct {
	TotalDays               int     `json:"total_days"`
	CompletedDays           int     `json:"completed_days"`
	CompletionRate          float64 `json:"completion_rate"`
	MostMissedTask          string  `json:"most_missed_task,omitempty"`
	MostMissedWeekday       string  `json:"most_missed_weekday,omitempty"`
	CommonReflectionKeyword string  `json:"common_reflection_keyword,omitempty"`
	PatternsReliable        bool    `json:"patterns_reliable"`
	ReflectionsReliable     bool    `json:"reflections_reliable"`
	MinDaysForPatterns      int     `json:"min_days_for_patterns"`
	MinReflections          int     `json:"min_reflections_for_insights"`
	Summary                 string  `json:"summary,omitempty"`
}

// GetInsightsHandler handles the GetInsightsQuery.
type GetInsightsHandler struct {
	historyRepo habitsDomain.Repository
}

// NewGetInsightsHandler creates a new GetInsightsHandler.
func NewGetInsightsHandler(historyRepo habitsDomain.Repository) *GetInsightsHandler {
	return &GetInsightsHandler{historyRepo: historyRepo}
}

// Handle executes the GetInsightsQuery.
func (h *GetInsightsHandler) Handle(ctx context.Context, query GetInsightsQuery) (*InsightsDTO, error) {
	history, err := h.historyRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = habitsDomain.NewHistory(query.UserID)
	}

	result := domain.GenerateInsights(history)
	return &InsightsDTO{
		TotalDays:               result.TotalDays,
		CompletedDays:           result.CompletedDays,
		CompletionRate:          result.CompletionRate,
		MostMissedTask:          string(result.MostMissedTask),
		MostMissedWeekday:       result.MostMissedWeekday,
		CommonReflectionKeyword: result.CommonReflectionKeyword,
		PatternsReliable:        result.Confidence.PatternsReliable,
		ReflectionsReliable:     result.Confidence.ReflectionsReliable,
		MinDaysForPatterns:      result.Confidence.MinDaysForPatterns,
		MinReflections:          result.Confidence.MinReflectionsForInsights,
		Summary:                 result.Summary,
	}, nil
}
