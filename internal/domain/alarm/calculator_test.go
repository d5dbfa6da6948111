package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextFireTime(t *testing.T) {
	// 2026-08-19 is a Wednesday
	wednesday := time.Date(2026, 8, 19, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		hour     int
		minute   int
		days     []int
		expected time.Time
	}{
		{
			name:   "time already passed today, next enabled day is Monday",
			now:    wednesday, // Wed 08:00
			hour:   7, minute: 0,
			days:     []int{1, 3}, // Mon, Wed
			expected: time.Date(2026, 8, 24, 7, 0, 0, 0, time.UTC),
		},
		{
			name:   "time still ahead today fires same day",
			now:    time.Date(2026, 8, 17, 6, 0, 0, 0, time.UTC), // Mon 06:00
			hour:   7, minute: 0,
			days:     []int{1},
			expected: time.Date(2026, 8, 17, 7, 0, 0, 0, time.UTC),
		},
		{
			name:   "exactly now fires immediately",
			now:    time.Date(2026, 8, 17, 7, 0, 0, 0, time.UTC), // Mon 07:00
			hour:   7, minute: 0,
			days:     []int{1},
			expected: time.Date(2026, 8, 17, 7, 0, 0, 0, time.UTC),
		},
		{
			name:   "one second past waits a full week",
			now:    time.Date(2026, 8, 17, 7, 0, 1, 0, time.UTC),
			hour:   7, minute: 0,
			days:     []int{1},
			expected: time.Date(2026, 8, 24, 7, 0, 0, 0, time.UTC),
		},
		{
			name:   "sunday uses ISO numbering",
			now:    wednesday,
			hour:   9, minute: 30,
			days:     []int{7},
			expected: time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC),
		},
		{
			name:   "every day picks the soonest slot",
			now:    wednesday,
			hour:   23, minute: 59,
			days:     []int{1, 2, 3, 4, 5, 6, 7},
			expected: time.Date(2026, 8, 19, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFireTime(tt.now, tt.hour, tt.minute, tt.days)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNextFireTimeWeekdayMatchesRequest(t *testing.T) {
	now := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)

	for day := 1; day <= 7; day++ {
		got := NextFireTime(now, 7, 0, []int{day})
		assert.Equal(t, day, isoWeekday(got.Weekday()))
		assert.False(t, got.Before(now))
	}
}

func TestDaysUntilEarliest(t *testing.T) {
	// Same-day counts as a week out; out-of-range values are ignored
	assert.Equal(t, 7, daysUntilEarliest([]int{3}, 3))
	assert.Equal(t, 1, daysUntilEarliest([]int{4}, 3))
	assert.Equal(t, 6, daysUntilEarliest([]int{2}, 3))
	assert.Equal(t, 7, daysUntilEarliest([]int{0, 8}, 3))
}
