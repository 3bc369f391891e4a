package domain

import (
	"sort"
	"time"

	sharedDomain "github.com/brushtrack/brushtrack/internal/shared/domain"
	"github.com/google/uuid"
)

// RecoveryWindow is the rolling window within which at most one recovery
// grant may be consumed. Measured from the last grant, not calendar weeks.
const RecoveryWindow = 7 * 24 * time.Hour

// History is the per-user habit history aggregate: a mapping from date key
// to that day's record, plus the recovery mechanic's bookkeeping. Toggling
// a task is the sole mutation entry point; streaks, insights and scores are
// pure projections over it. The aggregate performs no I/O.
type History struct {
	sharedDomain.BaseAggregateRoot
	userID             uuid.UUID
	records            map[DateKey]DayRecord
	lastRecoveryUsedAt *time.Time
	recoveredDate      *DateKey
}

// NewHistory creates an empty history for a user.
func NewHistory(userID uuid.UUID) *History {
	return &History{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		userID:            userID,
		records:           make(map[DateKey]DayRecord),
	}
}

// RehydrateHistory recreates a history from persisted state without
// generating events.
func RehydrateHistory(
	id uuid.UUID,
	userID uuid.UUID,
	records map[DateKey]DayRecord,
	lastRecoveryUsedAt *time.Time,
	recoveredDate *DateKey,
	createdAt time.Time,
	updatedAt time.Time,
) *History {
	if records == nil {
		records = make(map[DateKey]DayRecord)
	}
	entity := sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt)
	return &History{
		BaseAggregateRoot:  sharedDomain.RehydrateBaseAggregateRoot(entity),
		userID:             userID,
		records:            records,
		lastRecoveryUsedAt: lastRecoveryUsedAt,
		recoveredDate:      recoveredDate,
	}
}

func (h *History) UserID() uuid.UUID { return h.userID }

// LastRecoveryUsedAt returns when the last recovery grant was consumed,
// or nil if none ever was.
func (h *History) LastRecoveryUsedAt() *time.Time { return h.lastRecoveryUsedAt }

// RecoveredDate returns the single forgiven gap day, or nil.
func (h *History) RecoveredDate() *DateKey { return h.recoveredDate }

// Record returns the day's record and whether it exists.
func (h *History) Record(key DateKey) (DayRecord, bool) {
	r, ok := h.records[key]
	return r, ok
}

// Len returns the number of recorded days.
func (h *History) Len() int { return len(h.records) }

// Keys returns all recorded date keys in chronological order. Storage
// implies no ordering, so temporal walks always sort first.
func (h *History) Keys() []DateKey {
	keys := make([]DateKey, 0, len(h.records))
	for k := range h.records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ToggleTask flips the named task on the record for the given day, creating
// a default all-unset record if absent, and returns the updated record.
// Completion transitions are surfaced as domain events so callers can react
// (celebration UI, reminder suppression) without re-diffing state. If the
// toggle completes a day that qualifies as a recovery day, the recovery
// grant is consumed in the same operation.
func (h *History) ToggleTask(key DateKey, task TaskName, now time.Time) (DayRecord, error) {
	if !task.IsValid() {
		return DayRecord{}, ErrInvalidTask
	}

	rec := h.records[key]
	wasComplete := rec.IsComplete()

	rec, err := rec.toggled(task)
	if err != nil {
		return DayRecord{}, err
	}
	h.records[key] = rec
	h.Touch()

	h.AddDomainEvent(NewTaskToggled(h, key, task, rec))

	switch {
	case !wasComplete && rec.IsComplete():
		if h.IsRecoveryDay(key, now) {
			stamped := now
			recovered := key.Previous()
			h.lastRecoveryUsedAt = &stamped
			h.recoveredDate = &recovered
			h.AddDomainEvent(NewRecoveryConsumed(h, key, recovered))
		}
		streaks := CalculateStreaks(h, key)
		h.AddDomainEvent(NewDayCompleted(h, key, streaks))
		if milestone, ok := streakMilestone(streaks.Current); ok {
			h.AddDomainEvent(NewStreakMilestoneReached(h, key, milestone))
		}
	case wasComplete && !rec.IsComplete():
		h.AddDomainEvent(NewDayReopened(h, key))
	}

	return rec, nil
}

// SetReflection attaches a free-text note to the day's record, creating a
// default record if absent.
func (h *History) SetReflection(key DateKey, text string) DayRecord {
	rec := h.records[key].withReflection(text)
	h.records[key] = rec
	h.Touch()
	return rec
}

// IsRecoveryDay reports whether completing all tasks on the given day would
// retroactively forgive the preceding missed day. True iff yesterday's
// record exists with at least one task undone (a missing record is not a
// recoverable miss) and no grant was consumed within the rolling window.
func (h *History) IsRecoveryDay(key DateKey, now time.Time) bool {
	prev, ok := h.records[key.Previous()]
	if !ok || prev.IsComplete() {
		return false
	}
	if h.lastRecoveryUsedAt != nil && now.Sub(*h.lastRecoveryUsedAt) < RecoveryWindow {
		return false
	}
	return true
}

// isForgiven reports whether the given gap day was covered by a consumed
// recovery grant. At most one day is ever forgiven at a time.
func (h *History) isForgiven(key DateKey) bool {
	return h.recoveredDate != nil && *h.recoveredDate == key
}

// streakMilestone returns the milestone value when a streak lands exactly
// on one.
func streakMilestone(streak int) (int, bool) {
	switch streak {
	case 7, 30, 100:
		return streak, true
	default:
		return 0, false
	}
}
