package srs

import "time"

// Clock supplies the current instant. Callers sample it once per operation
// and derive the current date from the same instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	now := time.Now()
	if c.Location != nil {
		return now.In(c.Location)
	}
	return now
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// DaysBetween returns the number of calendar days from the date of from to
// the date of to. Both dates are taken in to's location.
func DaysBetween(from, to time.Time) int {
	from = from.In(to.Location())
	return civilDays(to.Date()) - civilDays(from.Date())
}

// civilDays counts the days from 1970-01-01 to the given proleptic Gregorian
// date. It stays exact where a time.Duration would overflow.
func civilDays(year int, month time.Month, day int) int {
	y := year
	m := int(month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yearOfEra := y - era*400
	dayOfYear := (153*((m+9)%12)+2)/5 + day - 1
	dayOfEra := yearOfEra*365 + yearOfEra/4 - yearOfEra/100 + dayOfYear
	return era*146097 + dayOfEra - 719468
}
