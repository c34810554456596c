package todo

import "time"

// NextDueDate computes the due date of the next occurrence after due for
// the given pattern. Time of day and location are preserved exactly.
//
// Monthly advances to the same day of the following month; when that day
// does not exist (Jan 31 → February) it clamps to the last day of the
// target month. Yearly advances to the same month and day of the following
// year, clamping Feb 29 to Feb 28 in non-leap years. Clamping is explicit:
// the function never constructs an out-of-range date and lets the time
// package normalize it into the wrong month.
func NextDueDate(due time.Time, pattern Pattern) time.Time {
	switch pattern {
	case PatternDaily:
		return due.AddDate(0, 0, 1)
	case PatternWeekly:
		return due.AddDate(0, 0, 7)
	case PatternMonthly:
		year, month := due.Year(), due.Month()+1
		if month > time.December {
			month = time.January
			year++
		}
		day := min(due.Day(), daysIn(year, month))
		return time.Date(year, month, day,
			due.Hour(), due.Minute(), due.Second(), due.Nanosecond(), due.Location())
	case PatternYearly:
		year := due.Year() + 1
		day := min(due.Day(), daysIn(year, due.Month()))
		return time.Date(year, due.Month(), day,
			due.Hour(), due.Minute(), due.Second(), due.Nanosecond(), due.Location())
	}
	return due
}

// daysIn returns the number of days in the given month. Day 0 of the next
// month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
