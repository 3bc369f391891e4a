package queries

import (
	"context"
	"testing"
	"time"

	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHistoryRepo struct {
	history *habitsDomain.History
}

func (r *stubHistoryRepo) Save(ctx context.Context, history *habitsDomain.History) error {
	r.history = history
	return nil
}

func (r *stubHistoryRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*habitsDomain.History, error) {
	return r.history, nil
}

func historyWithRecords(records map[habitsDomain.DateKey]habitsDomain.DayRecord) *habitsDomain.History {
	return habitsDomain.RehydrateHistory(
		uuid.New(), uuid.New(), records, nil, nil, time.Now(), time.Now(),
	)
}

func TestGetInsightsHandler_EmptyHistory(t *testing.T) {
	handler := NewGetInsightsHandler(&stubHistoryRepo{})

	dto, err := handler.Handle(context.Background(), GetInsightsQuery{UserID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, 0, dto.TotalDays)
	assert.Zero(t, dto.CompletionRate)
	assert.False(t, dto.PatternsReliable)
	assert.False(t, dto.ReflectionsReliable)
	assert.NotZero(t, dto.MinDaysForPatterns)
	assert.NotZero(t, dto.MinReflections)
	assert.Empty(t, dto.Summary)
}

func TestGetInsightsHandler_MapsDomainResult(t *testing.T) {
	records := make(map[habitsDomain.DateKey]habitsDomain.DayRecord)
	key := habitsDomain.DateKey("2024-01-01")
	for i := 0; i < 7; i++ {
		records[key] = habitsDomain.RehydrateDayRecord(true, true, false, "too tired")
		key = key.Next()
	}
	handler := NewGetInsightsHandler(&stubHistoryRepo{history: historyWithRecords(records)})

	dto, err := handler.Handle(context.Background(), GetInsightsQuery{UserID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, 7, dto.TotalDays)
	assert.Equal(t, 0, dto.CompletedDays)
	assert.True(t, dto.PatternsReliable)
	assert.Equal(t, "floss", dto.MostMissedTask)
	assert.True(t, dto.ReflectionsReliable)
	assert.Equal(t, "tired", dto.CommonReflectionKeyword)
	assert.NotEmpty(t, dto.Summary)
}

func TestGetHealthScoreHandler_EmptyHistory(t *testing.T) {
	handler := NewGetHealthScoreHandler(&stubHistoryRepo{})

	dto, err := handler.Handle(context.Background(), GetHealthScoreQuery{
		UserID: uuid.New(),
		Today:  habitsDomain.DateKey("2024-03-15"),
	})

	require.NoError(t, err)
	assert.Equal(t, &HealthScoreDTO{}, dto)
}

func TestGetHealthScoreHandler_MapsBreakdown(t *testing.T) {
	records := map[habitsDomain.DateKey]habitsDomain.DayRecord{
		"2024-03-14": habitsDomain.RehydrateDayRecord(true, true, true, ""),
		"2024-03-15": habitsDomain.RehydrateDayRecord(true, true, true, ""),
	}
	handler := NewGetHealthScoreHandler(&stubHistoryRepo{history: historyWithRecords(records)})

	dto, err := handler.Handle(context.Background(), GetHealthScoreQuery{
		UserID: uuid.New(),
		Today:  habitsDomain.DateKey("2024-03-15"),
	})

	require.NoError(t, err)
	assert.Equal(t, 100, dto.Completion)
	assert.Equal(t, 100, dto.Balance)
	assert.Equal(t, 2, dto.Streak)
	assert.Equal(t, 2, dto.MaxStreak)
	assert.Greater(t, dto.Total, 0)
	assert.LessOrEqual(t, dto.Total, 100)
}
