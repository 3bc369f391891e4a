package domain

import (
	"fmt"
	"strings"
	"time"

	habitsDomain "github.com/brushtrack/brushtrack/internal/habits/domain"
)

// Confidence gating thresholds. Insights below these sample sizes are
// withheld rather than reported, so the engine never overfits a pattern to
// a handful of days. Exposed in every result so consumers can explain why
// an insight is missing.
const (
	MinDaysForPatterns        = 7
	MinReflectionsForInsights = 3
)

// reflectionKeywords is the fixed list matched (case-insensitive substring)
// against daily reflections. Order is the tie-break order.
var reflectionKeywords = []string{
	"tired", "busy", "forgot", "travel", "stress", "sick", "lazy", "late", "pain",
}

// weekdayOrder fixes the tie-break order for most-missed weekday.
var weekdayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// Confidence reports whether each insight family has enough data to be
// trusted, along with the thresholds applied.
type Confidence struct {
	PatternsReliable          bool
	ReflectionsReliable       bool
	MinDaysForPatterns        int
	MinReflectionsForInsights int
}

// InsightResult aggregates the full history into behavioral insights.
// Gated fields are empty until their confidence threshold is met.
type InsightResult struct {
	TotalDays               int
	CompletedDays           int
	CompletionRate          float64 // 0-100
	MostMissedTask          habitsDomain.TaskName
	MostMissedWeekday       string
	CommonReflectionKeyword string
	Confidence              Confidence
	Summary                 string
}

// GenerateInsights computes completion rate, miss patterns and reflection
// keyword frequency over the whole history. It never fails: an empty
// history yields zeros and withheld insights, not an error.
func GenerateInsights(h *habitsDomain.History) InsightResult {
	result := InsightResult{
		Confidence: Confidence{
			MinDaysForPatterns:        MinDaysForPatterns,
			MinReflectionsForInsights: MinReflectionsForInsights,
		},
	}

	taskMisses := make(map[habitsDomain.TaskName]int)
	weekdayMisses := make(map[time.Weekday]int)
	keywordCounts := make(map[string]int)
	totalKeywordHits := 0

	for _, key := range h.Keys() {
		rec, _ := h.Record(key)
		result.TotalDays++
		if rec.IsComplete() {
			result.CompletedDays++
		} else {
			weekdayMisses[key.Weekday()]++
		}
		for _, task := range habitsDomain.TaskNames() {
			if !rec.Done(task) {
				taskMisses[task]++
			}
		}
		if text := rec.Reflection(); text != "" {
			lower := strings.ToLower(text)
			for _, kw := range reflectionKeywords {
				if strings.Contains(lower, kw) {
					keywordCounts[kw]++
					totalKeywordHits++
				}
			}
		}
	}

	if result.TotalDays > 0 {
		result.CompletionRate = float64(result.CompletedDays) / float64(result.TotalDays) * 100
	}

	result.Confidence.PatternsReliable = result.TotalDays >= MinDaysForPatterns
	result.Confidence.ReflectionsReliable = totalKeywordHits >= MinReflectionsForInsights

	if result.Confidence.PatternsReliable {
		result.MostMissedTask = mostMissedTask(taskMisses)
		result.MostMissedWeekday = mostMissedWeekday(weekdayMisses)
	}
	if result.Confidence.ReflectionsReliable {
		result.CommonReflectionKeyword = topKeyword(keywordCounts)
	}
	if result.MostMissedTask != "" && result.MostMissedWeekday != "" {
		result.Summary = fmt.Sprintf(
			"You most often skip %s care, especially on %ss.",
			result.MostMissedTask, result.MostMissedWeekday,
		)
	}

	return result
}

// mostMissedTask picks the task with the highest miss count. Ties go to the
// first task in the fixed iteration order; zero misses yields no insight.
func mostMissedTask(misses map[habitsDomain.TaskName]int) habitsDomain.TaskName {
	var best habitsDomain.TaskName
	bestCount := 0
	for _, task := range habitsDomain.TaskNames() {
		if misses[task] > bestCount {
			best = task
			bestCount = misses[task]
		}
	}
	return best
}

// mostMissedWeekday picks the weekday with the most incomplete days, ties
// broken by the fixed Sunday-first order.
func mostMissedWeekday(misses map[time.Weekday]int) string {
	var best string
	bestCount := 0
	for _, wd := range weekdayOrder {
		if misses[wd] > bestCount {
			best = wd.String()
			bestCount = misses[wd]
		}
	}
	return best
}

// topKeyword picks the most frequent reflection keyword, ties broken by
// list order.
func topKeyword(counts map[string]int) string {
	var best string
	bestCount := 0
	for _, kw := range reflectionKeywords {
		if counts[kw] > bestCount {
			best = kw
			bestCount = counts[kw]
		}
	}
	return best
}
