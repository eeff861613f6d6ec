package cultivation

import "time"

// Midnight truncates t to the start of its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date offset whole days after t, normalized to
// midnight UTC.
func AddDays(t time.Time, days int) time.Time {
	return Midnight(t).AddDate(0, 0, days)
}

// ElapsedDays counts the grow day the batch is in at the reference time. The
// sowing day itself is day 1; a reference time before the sow date still
// reports day 1, never zero or a negative value.
func ElapsedDays(sowDate, now time.Time) int {
	days := int(Midnight(now).Sub(Midnight(sowDate)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
