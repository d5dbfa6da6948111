package alarm

import (
	"errors"
	"time"
)

var (
	ErrAlarmNotFound       = errors.New("no alarm scheduled")
	ErrInvalidTime         = errors.New("invalid alarm time")
	ErrNoDaysSelected      = errors.New("no weekday selected")
	ErrInvalidDay          = errors.New("weekday out of range")
	ErrNoChallengeSelected = errors.New("no challenge selected")
)

// Alarm is the single scheduled wake-up alarm. There is one slot: scheduling
// overwrites the previous record, no history is kept.
type Alarm struct {
	Hour         int      `json:"hour"`
	Minute       int      `json:"minute"`
	Days         []int    `json:"days"` // ISO weekdays, 1=Monday .. 7=Sunday
	ToneID       string   `json:"toneId"`
	Challenges   []string `json:"challenges"`
	MorningTasks []string `json:"morningTasks"`
}

// isoWeekday maps time.Weekday onto the 1=Monday..7=Sunday encoding used in
// persisted records.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// HasDay reports whether the given ISO weekday is enabled.
func (a *Alarm) HasDay(day int) bool {
	for _, d := range a.Days {
		if d == day {
			return true
		}
	}
	return false
}

// NextFireTime returns the next occurrence of this alarm at or after now.
func (a *Alarm) NextFireTime(now time.Time) time.Time {
	return NextFireTime(now, a.Hour, a.Minute, a.Days)
}
