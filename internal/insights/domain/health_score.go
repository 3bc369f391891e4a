package domain

import (
	"math"

	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
)

// Health score component weights.
const (
	weightCompletion  = 0.4
	weightConsistency = 0.3
	weightBalance     = 0.2
	weightImprovement = 0.1

	// consistencyCeilingDays is the streak length that maps to a full
	// consistency score.
	consistencyCeilingDays = 30

	// trendWindowDays is the window compared against the preceding window
	// for the improvement sub-score.
	trendWindowDays = 7
)

// ScoreBreakdown holds the four 0-100 sub-scores.
type ScoreBreakdown struct {
	Completion  int
	Consistency int
	Balance     int
	Improvement int
}

// HealthScore is the weighted composite habit health score.
type HealthScore struct {
	Total     int
	Breakdown ScoreBreakdown
	Streak    int
	MaxStreak int
}

// CalculateHealthScore combines completion, consistency, balance and
// short-term trend into a single 0-100 score. Degenerate input (empty
// history) yields all zeros; no intermediate division is allowed to
// propagate a NaN into the result.
func CalculateHealthScore(h *habitsDomain.History, today habitsDomain.DateKey) HealthScore {
	streaks := habitsDomain.CalculateStreaks(h, today)
	score := HealthScore{Streak: streaks.Current, MaxStreak: streaks.Longest}

	if h.Len() == 0 {
		return score
	}

	completion := GenerateInsights(h).CompletionRate
	consistency := math.Min(float64(streaks.Longest)/consistencyCeilingDays*100, 100)
	balance := balanceScore(h)
	improvement := improvementScore(h, today)

	score.Breakdown = ScoreBreakdown{
		Completion:  clampScore(completion),
		Consistency: clampScore(consistency),
		Balance:     clampScore(balance),
		Improvement: clampScore(improvement),
	}
	total := weightCompletion*completion +
		weightConsistency*consistency +
		weightBalance*balance +
		weightImprovement*improvement
	score.Total = clampScore(total)

	return score
}

// balanceScore penalizes uneven task completion: 100 minus the average
// absolute deviation of the per-task completion rates, floored at 0.
func balanceScore(h *habitsDomain.History) float64 {
	total := h.Len()
	if total == 0 {
		return 0
	}

	done := make(map[habitsDomain.TaskName]int)
	for _, key := range h.Keys() {
		rec, _ := h.Record(key)
		for _, task := range habitsDomain.TaskNames() {
			if rec.Done(task) {
				done[task]++
			}
		}
	}

	tasks := habitsDomain.TaskNames()
	rates := make([]float64, 0, len(tasks))
	sum := 0.0
	for _, task := range tasks {
		rate := float64(done[task]) / float64(total) * 100
		rates = append(rates, rate)
		sum += rate
	}
	mean := sum / float64(len(rates))

	deviation := 0.0
	for _, rate := range rates {
		deviation += math.Abs(rate - mean)
	}
	deviation /= float64(len(rates))

	return math.Max(100-deviation, 0)
}

// improvementScore compares the most recent window's completion rate with
// the preceding window's, mapping the delta onto 0-100 centered at 50.
func improvementScore(h *habitsDomain.History, today habitsDomain.DateKey) float64 {
	recent := windowRate(h, today, trendWindowDays)
	previous := windowRate(h, shiftBack(today, trendWindowDays), trendWindowDays)
	delta := recent - previous
	return math.Max(math.Min(50+delta/2, 100), 0)
}

// windowRate returns the share of fully completed days over a fixed-length
// window ending at the given day, as a 0-100 rate.
func windowRate(h *habitsDomain.History, end habitsDomain.DateKey, days int) float64 {
	completed := 0
	key := end
	for i := 0; i < days; i++ {
		if rec, ok := h.Record(key); ok && rec.IsComplete() {
			completed++
		}
		key = key.Previous()
	}
	return float64(completed) / float64(days) * 100
}

func shiftBack(key habitsDomain.DateKey, days int) habitsDomain.DateKey {
	for i := 0; i < days; i++ {
		key = key.Previous()
	}
	return key
}

// clampScore rounds to the nearest integer and clamps to [0, 100],
// coercing NaN to 0.
func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
