package mock

import "time"

const dateLayout = "2006-01-02"

// parseDate falls back to a date two weeks out when the input is missing
// or malformed. Services degrade to plausible output rather than crash on
// bad date input; rejecting it is the HTTP tier's job.
func parseDate(s string, now time.Time) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return now.AddDate(0, 0, 14)
	}
	return t
}

// nightsBetween clamps inverted or zero-length ranges to one night.
func nightsBetween(checkIn, checkOut time.Time) int {
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

func daysUntil(t time.Time, now time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}

func isWeekendStart(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Friday || wd == time.Saturday
}
