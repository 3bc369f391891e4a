package domain

import (
	sharedDomain "github.com/brushtrack/brushtrack/internal/shared/domain"
	"github.com/google/uuid"
)

const aggregateType = "HabitHistory"

// TaskToggled is emitted whenever a task boolean is flipped.
type TaskToggled struct {
	sharedDomain.BaseEvent
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date"`
	Task      string    `json:"task"`
	Done      bool      `json:"done"`
	DoneCount int       `json:"done_count"`
}

// NewTaskToggled creates a TaskToggled event.
func NewTaskToggled(h *History, key DateKey, task TaskName, rec DayRecord) *TaskToggled {
	return &TaskToggled{
		BaseEvent: sharedDomain.NewBaseEvent(h.ID(), aggregateType, "habits.day.task_toggled"),
		UserID:    h.UserID(),
		Date:      key.String(),
		Task:      string(task),
		Done:      rec.Done(task),
		DoneCount: rec.DoneCount(),
	}
}

// DayCompleted is emitted when a day transitions to fully complete. The
// notification scheduler consumes it to suppress remaining reminders for
// the day; the UI consumes it for celebration.
type DayCompleted struct {
	sharedDomain.BaseEvent
	UserID        uuid.UUID `json:"user_id"`
	Date          string    `json:"date"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
}

// NewDayCompleted creates a DayCompleted event.
func NewDayCompleted(h *History, key DateKey, streaks StreakResult) *DayCompleted {
	return &DayCompleted{
		BaseEvent:     sharedDomain.NewBaseEvent(h.ID(), aggregateType, "habits.day.completed"),
		UserID:        h.UserID(),
		Date:          key.String(),
		CurrentStreak: streaks.Current,
		LongestStreak: streaks.Longest,
	}
}

// DayReopened is emitted when a completed day is toggled back to incomplete.
type DayReopened struct {
	sharedDomain.BaseEvent
	UserID uuid.UUID `json:"user_id"`
	Date   string    `json:"date"`
}

// NewDayReopened creates a DayReopened event.
func NewDayReopened(h *History, key DateKey) *DayReopened {
	return &DayReopened{
		BaseEvent: sharedDomain.NewBaseEvent(h.ID(), aggregateType, "habits.day.reopened"),
		UserID:    h.UserID(),
		Date:      key.String(),
	}
}

// RecoveryConsumed is emitted when a recovery grant is spent to forgive a
// missed day.
type RecoveryConsumed struct {
	sharedDomain.BaseEvent
	UserID        uuid.UUID `json:"user_id"`
	Date          string    `json:"date"`
	RecoveredDate string    `json:"recovered_date"`
}

// NewRecoveryConsumed creates a RecoveryConsumed event.
func NewRecoveryConsumed(h *History, key, recovered DateKey) *RecoveryConsumed {
	return &RecoveryConsumed{
		BaseEvent:     sharedDomain.NewBaseEvent(h.ID(), aggregateType, "habits.recovery.consumed"),
		UserID:        h.UserID(),
		Date:          key.String(),
		RecoveredDate: recovered.String(),
	}
}

// StreakMilestoneReached is emitted when the current streak lands exactly
// on a milestone (7, 30, 100 days).
type StreakMilestoneReached struct {
	sharedDomain.BaseEvent
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date"`
	Milestone int       `json:"milestone"`
}

// NewStreakMilestoneReached creates a StreakMilestoneReached event.
func NewStreakMilestoneReached(h *History, key DateKey, milestone int) *StreakMilestoneReached {
	return &StreakMilestoneReached{
		BaseEvent: sharedDomain.NewBaseEvent(h.ID(), aggregateType, "habits.streak.milestone_reached"),
		UserID:    h.UserID(),
		Date:      key.String(),
		Milestone: milestone,
	}
}
