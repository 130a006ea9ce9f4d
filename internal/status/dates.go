package status

import "time"

const dayLayout = "2006-01-02"

// parseDay parses the leading calendar-date component of a date string.
// Time-of-day suffixes are dropped so that hour boundaries can never move
// a date across days.
func parseDay(s string) (time.Time, bool) {
	if len(s) < len(dayLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(dayLayout, s[:len(dayLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// toDay truncates a timestamp to its calendar date in UTC.
func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from a to b (negative when b
// precedes a).
func daysBetween(a, b time.Time) int {
	return int(toDay(b).Sub(toDay(a)) / (24 * time.Hour))
}

// YearOf extracts the leading 4-digit year from a date string. It never
// round-trips through a timezone-aware parse; "1999-03-31" yields "1999"
// no matter what clock or zone the process runs under. Returns "" when the
// string has no leading year.
func YearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	for i := 0; i < 4; i++ {
		if date[i] < '0' || date[i] > '9' {
			return ""
		}
	}
	return date[:4]
}

// MonthsBetween returns the whole calendar months from the earlier date
// string to the later one. The naive year/month difference is decremented by
// one when the later day-of-month has not yet reached the earlier one, so
// "2024-01-20" to "2024-03-10" is 1 month, not 2. Returns 0 when either
// date does not parse.
func MonthsBetween(earlier, later string) int {
	a, okA := parseDay(earlier)
	b, okB := parseDay(later)
	if !okA || !okB {
		return 0
	}
	if b.Before(a) {
		a, b = b, a
	}

	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
