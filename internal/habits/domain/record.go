package domain

// TaskName identifies one of the three daily dental-care tasks.
type TaskName string

const (
	TaskMorning TaskName = "morning"
	TaskNight   TaskName = "night"
	TaskFloss   TaskName = "floss"
)

// IsValid checks if the task name is recognized.
func (t TaskName) IsValid() bool {
	switch t {
	case TaskMorning, TaskNight, TaskFloss:
		return true
	default:
		return false
	}
}

// TaskNames returns all tasks in their stable iteration order. Tie-breaks
// in aggregation code follow this order.
func TaskNames() []TaskName {
	return []TaskName{TaskMorning, TaskNight, TaskFloss}
}

// DayRecord holds one day's task-completion state plus an optional
// free-text reflection. The zero value is a valid all-unset record.
type DayRecord struct {
	morning    bool
	night      bool
	floss      bool
	reflection string
}

// RehydrateDayRecord recreates a record from persisted state.
func RehydrateDayRecord(morning, night, floss bool, reflection string) DayRecord {
	return DayRecord{morning: morning, night: night, floss: floss, reflection: reflection}
}

func (r DayRecord) Morning() bool      { return r.morning }
func (r DayRecord) Night() bool        { return r.night }
func (r DayRecord) Floss() bool        { return r.floss }
func (r DayRecord) Reflection() string { return r.reflection }

// Done reports whether the named task is done.
func (r DayRecord) Done(task TaskName) bool {
	switch task {
	case TaskMorning:
		return r.morning
	case TaskNight:
		return r.night
	case TaskFloss:
		return r.floss
	default:
		return false
	}
}

// IsComplete reports whether all three tasks are done. Always recomputed,
// never stored.
func (r DayRecord) IsComplete() bool {
	return r.morning && r.night && r.floss
}

// DoneCount returns how many of the three tasks are done.
func (r DayRecord) DoneCount() int {
	n := 0
	for _, t := range TaskNames() {
		if r.Done(t) {
			n++
		}
	}
	return n
}

// toggled returns a copy of the record with the named task flipped.
func (r DayRecord) toggled(task TaskName) (DayRecord, error) {
	switch task {
	case TaskMorning:
		r.morning = !r.morning
	case TaskNight:
		r.night = !r.night
	case TaskFloss:
		r.floss = !r.floss
	default:
		return r, ErrInvalidTask
	}
	return r, nil
}

// withReflection returns a copy of the record with the reflection set.
func (r DayRecord) withReflection(text string) DayRecord {
	r.reflection = text
	return r
}
