package domain

import (
	"testing"
	"time"

	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// buildHistory assembles a rehydrated history from literal records.
func buildHistory(records map[habitsDomain.DateKey]habitsDomain.DayRecord) *habitsDomain.History {
	return habitsDomain.RehydrateHistory(
		uuid.New(), uuid.New(), records, nil, nil, time.Now(), time.Now(),
	)
}

// day is shorthand for a rehydrated record.
func day(morning, night, floss bool, reflection string) habitsDomain.DayRecord {
	return habitsDomain.RehydrateDayRecord(morning, night, floss, reflection)
}

func TestGenerateInsights_EmptyHistory(t *testing.T) {
	result := GenerateInsights(buildHistory(nil))

	assert.Equal(t, 0, result.TotalDays)
	assert.Equal(t, 0, result.CompletedDays)
	assert.Zero(t, result.CompletionRate)
	assert.Empty(t, result.MostMissedTask)
	assert.Empty(t, result.MostMissedWeekday)
	assert.Empty(t, result.CommonReflectionKeyword)
	assert.Empty(t, result.Summary)
	assert.False(t, result.Confidence.PatternsReliable)
	assert.False(t, result.Confidence.ReflectionsReliable)
	assert.Equal(t, MinDaysForPatterns, result.Confidence.MinDaysForPatterns)
	assert.Equal(t, MinReflectionsForInsights, result.Confidence.MinReflectionsForInsights)
}

func TestGenerateInsights_PatternsWithheldBelowThreshold(t *testing.T) {
	records := make(map[habitsDomain.DateKey]habitsDomain.DayRecord)
	key := habitsDomain.DateKey("2024-01-01")
	for i := 0; i < MinDaysForPatterns-1; i++ {
		records[key] = day(true, true, false, "")
		key = key.Next()
	}

	result := GenerateInsights(buildHistory(records))

	assert.Equal(t, 6, result.TotalDays)
	assert.False(t, result.Confidence.PatternsReliable)
	assert.Empty(t, result.MostMissedTask)
	assert.Empty(t, result.MostMissedWeekday)
	assert.Empty(t, result.Summary)
}

func TestGenerateInsights_MostMissedTask(t *testing.T) {
	// 2024-01-01 is a Monday; seven days ending Sunday the 7th. Floss is
	// skipped on the two weekend days.
	records := map[habitsDomain.DateKey]habitsDomain.DayRecord{
		"2024-01-01": day(true, true, true, ""),
		"2024-01-02": day(true, true, true, ""),
		"2024-01-03": day(true, true, true, ""),
		"2024-01-04": day(true, true, true, ""),
		"2024-01-05": day(true, true, true, ""),
		"2024-01-06": day(true, true, false, ""), // Saturday
		"2024-01-07": day(true, true, false, ""), // Sunday
	}

	result := GenerateInsights(buildHistory(records))

	assert.Equal(t, 7, result.TotalDays)
	assert.Equal(t, 5, result.CompletedDays)
	assert.InDelta(t, 71.43, result.CompletionRate, 0.01)
	assert.True(t, result.Confidence.PatternsReliable)
	assert.Equal(t, habitsDomain.TaskFloss, result.MostMissedTask)
	// Saturday and Sunday tie at one miss each; Sunday-first order wins.
	assert.Equal(t, "Sunday", result.MostMissedWeekday)
	assert.Equal(t, "You most often skip floss care, especially on Sundays.", result.Summary)
}

func TestGenerateInsights_TaskTieBreakFollowsFixedOrder(t *testing.T) {
	records := make(map[habitsDomain.DateKey]habitsDomain.DayRecord)
	key := habitsDomain.DateKey("2024-01-01")
	for i := 0; i < MinDaysForPatterns; i++ {
		// Night and floss both missed every day.
		records[key] = day(true, false, false, "")
		key = key.Next()
	}

	result := GenerateInsights(buildHistory(records))

	assert.Equal(t, habitsDomain.TaskNight, result.MostMissedTask)
}

func TestGenerateInsights_NoMissesYieldsNoPattern(t *testing.T) {
	records := make(map[habitsDomain.DateKey]habitsDomain.DayRecord)
	key := habitsDomain.DateKey("2024-01-01")
	for i := 0; i < MinDaysForPatterns; i++ {
		records[key] = day(true, true, true, "")
		key = key.Next()
	}

	result := GenerateInsights(buildHistory(records))

	assert.True(t, result.Confidence.PatternsReliable)
	assert.Empty(t, result.MostMissedTask)
	assert.Empty(t, result.MostMissedWeekday)
	assert.Empty(t, result.Summary)
	assert.Equal(t, float64(100), result.CompletionRate)
}

func TestGenerateInsights_KeywordGating(t *testing.T) {
	records := map[habitsDomain.DateKey]habitsDomain.DayRecord{
		"2024-01-01": day(true, true, false, "so tired tonight"),
		"2024-01-02": day(true, true, false, "Tired again"),
	}

	result := GenerateInsights(buildHistory(records))
	assert.False(t, result.Confidence.ReflectionsReliable)
	assert.Empty(t, result.CommonReflectionKeyword)

	records["2024-01-03"] = day(true, true, false, "TIRED.")
	result = GenerateInsights(buildHistory(records))
	assert.True(t, result.Confidence.ReflectionsReliable)
	assert.Equal(t, "tired", result.CommonReflectionKeyword)
}

func TestGenerateInsights_KeywordTieBreakFollowsListOrder(t *testing.T) {
	records := map[habitsDomain.DateKey]habitsDomain.DayRecord{
		"2024-01-01": day(true, true, false, "busy and tired"),
		"2024-01-02": day(true, true, false, "tired, busy day"),
	}

	result := GenerateInsights(buildHistory(records))

	// Four keyword hits total, two each; "tired" precedes "busy" in the
	// fixed list.
	assert.True(t, result.Confidence.ReflectionsReliable)
	assert.Equal(t, "tired", result.CommonReflectionKeyword)
}

func TestGenerateInsights_KeywordMatchIsSubstring(t *testing.T) {
	records := map[habitsDomain.DateKey]habitsDomain.DayRecord{
		"2024-01-01": day(true, true, false, "stressful week"),
		"2024-01-02": day(true, true, false, "stressed out"),
		"2024-01-03": day(true, true, false, "so much stress"),
	}

	result := GenerateInsights(buildHistory(records))

	assert.Equal(t, "stress", result.CommonReflectionKeyword)
}
