package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DayFormat is the calendar-day layout used for seeds and the once-per-day check.
const DayFormat = "2006-01-02"

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic output.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for fortune generation. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current time from the package clock in UTC.
func Now() time.Time {
	return clock.Now().UTC()
}

// Today returns the current UTC calendar day as "2006-01-02". Every consumer
// of a day boundary (seeding, the daily store check) must use this.
func Today() string {
	return Now().Format(DayFormat)
}
