package domain

import "time"

// Elements.
const (
	ElementFire  = "fire"
	ElementEarth = "earth"
	ElementAir   = "air"
	ElementWater = "water"

	// UnknownSign is returned for unparseable birth dates.
	UnknownSign = "unknown"
)

// zodiacRange is one sign's slice of the calendar. Start and end are
// inclusive (month, day) pairs; Capricorn has startMonth > endMonth and wraps
// across year-end.
type zodiacRange struct {
	sign       string
	element    string
	startMonth int
	startDay   int
	endMonth   int
	endDay     int
}

// zodiacRanges partitions the year with no gaps. Order is fixed but not
// significant: exactly one range matches any (month, day).
var zodiacRanges = []zodiacRange{
	{"aries", ElementFire, 3, 21, 4, 19},
	{"taurus", ElementEarth, 4, 20, 5, 20},
	{"gemini", ElementAir, 5, 21, 6, 20},
	{"cancer", ElementWater, 6, 21, 7, 22},
	{"leo", ElementFire, 7, 23, 8, 22},
	{"virgo", ElementEarth, 8, 23, 9, 22},
	{"libra", ElementAir, 9, 23, 10, 22},
	{"scorpio", ElementWater, 10, 23, 11, 21},
	{"sagittarius", ElementFire, 11, 22, 12, 21},
	{"capricorn", ElementEarth, 12, 22, 1, 19},
	{"aquarius", ElementAir, 1, 20, 2, 18},
	{"pisces", ElementWater, 2, 19, 3, 20},
}

// ResolveZodiac maps a birth date ("2006-01-02"; the year is ignored) to its
// astrological sign and element. Unparseable dates yield the
// ("unknown", "unknown") sentinel rather than an error.
func ResolveZodiac(birthDate string) (sign, element string) {
	t, err := time.Parse(DayFormat, birthDate)
	if err != nil {
		return UnknownSign, UnknownSign
	}

	month, day := int(t.Month()), t.Day()
	for _, r := range zodiacRanges {
		if r.contains(month, day) {
			return r.sign, r.element
		}
	}
	// Unreachable: the ranges cover every valid (month, day).
	return UnknownSign, UnknownSign
}

func (r zodiacRange) contains(month, day int) bool {
	afterStart := month > r.startMonth || (month == r.startMonth && day >= r.startDay)
	beforeEnd := month < r.endMonth || (month == r.endMonth && day <= r.endDay)

	if r.startMonth > r.endMonth {
		// Wraps across year-end (Capricorn): either side of the boundary.
		return afterStart || beforeEnd
	}
	return afterStart && beforeEnd
}
