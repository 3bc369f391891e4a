package domain

// MaxStreakLookbackDays bounds the backward streak walk. Streaks longer
// than a year are undercounted; this is a documented limitation, and the
// bound guarantees termination independent of history size.
const MaxStreakLookbackDays = 365

// StreakResult holds current and longest streak lengths. Longest is always
// at least Current; both are zero for an empty history.
type StreakResult struct {
	Current int
	Longest int
}

// CalculateStreaks walks the history backward from today, one day at a
// time, accumulating a running consecutive-completion counter. Today is
// exempt from breaking the current streak while incomplete, since it may
// still be in progress. A gap day forgiven by the recovery mechanic counts
// toward the run as if it had been completed.
func CalculateStreaks(h *History, today DateKey) StreakResult {
	var current, longest, run int
	frozen := false

	key := today
	for i := 0; i < MaxStreakLookbackDays; i++ {
		rec, ok := h.Record(key)
		complete := ok && rec.IsComplete()

		switch {
		case complete || h.isForgiven(key):
			run++
			if run > longest {
				longest = run
			}
			if !frozen {
				current = run
			}
		case key == today:
			// Still in progress; neither extends nor breaks the run.
		default:
			run = 0
			frozen = true
		}

		key = key.Previous()
	}

	return StreakResult{Current: current, Longest: longest}
}
