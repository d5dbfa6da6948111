package alarm

import "time"

// NextFireTime computes the earliest timestamp at or after now whose weekday
// is in days and whose wall-clock time is exactly hour:minute. The
// comparison is non-strict, so if now lands exactly on the target instant
// the alarm fires immediately instead of waiting a week.
//
// Days uses the 1=Monday..7=Sunday encoding. The scan covers two weeks from
// today's target time; with a non-empty day set the first week always
// contains a match, the second is headroom around DST transitions.
func NextFireTime(now time.Time, hour, minute int, days []int) time.Time {
	base := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	for offset := 0; offset < 14; offset++ {
		candidate := base.AddDate(0, 0, offset)
		if containsDay(days, isoWeekday(candidate.Weekday())) && !candidate.Before(now) {
			return candidate
		}
	}

	// Unreachable with a non-empty day set; kept so a bad record can never
	// produce a zero time. Same-day counts as a full week out.
	return base.AddDate(0, 0, daysUntilEarliest(days, isoWeekday(now.Weekday())))
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// daysUntilEarliest returns the smallest positive day offset from today to
// an enabled weekday, treating a same-day hit as seven days out.
func daysUntilEarliest(days []int, today int) int {
	best := 7
	for _, d := range days {
		if d < 1 || d > 7 {
			continue
		}
		until := (d - today + 7) % 7
		if until == 0 {
			until = 7
		}
		if until < best {
			best = until
		}
	}
	return best
}
