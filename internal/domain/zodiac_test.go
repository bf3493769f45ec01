package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveZodiac(t *testing.T) {
	tests := []struct {
		name      string
		birthDate string
		sign      string
		element   string
	}{
		{"aries start", "1991-03-21", "aries", "fire"},
		{"aries end", "1991-04-19", "aries", "fire"},
		{"taurus", "1988-05-01", "taurus", "earth"},
		{"gemini", "2000-06-10", "gemini", "air"},
		{"cancer", "1990-07-15", "cancer", "water"},
		{"leo", "1985-08-01", "leo", "fire"},
		{"virgo", "1999-09-10", "virgo", "earth"},
		{"libra", "1970-10-01", "libra", "air"},
		{"scorpio", "1995-11-05", "scorpio", "water"},
		{"sagittarius end", "1992-12-21", "sagittarius", "fire"},
		{"capricorn start", "1992-12-22", "capricorn", "earth"},
		{"capricorn new year's eve", "1992-12-31", "capricorn", "earth"},
		{"capricorn new year's day", "1993-01-01", "capricorn", "earth"},
		{"capricorn end", "1993-01-19", "capricorn", "earth"},
		{"aquarius start", "1993-01-20", "aquarius", "air"},
		{"pisces", "1994-02-25", "pisces", "water"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sign, element := ResolveZodiac(tt.birthDate)
			assert.Equal(t, tt.sign, sign)
			assert.Equal(t, tt.element, element)
		})
	}
}

func TestResolveZodiac_UnparseableDate(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "1990-13-40", "15/07/1990"} {
		t.Run(fmt.Sprintf("input %q", input), func(t *testing.T) {
			sign, element := ResolveZodiac(input)
			assert.Equal(t, UnknownSign, sign)
			assert.Equal(t, UnknownSign, element)
		})
	}
}

// Every day of the year must resolve to exactly one of the 12 signs with a
// known element; the sentinel is unreachable for valid dates.
func TestResolveZodiac_CoversWholeYear(t *testing.T) {
	elements := map[string]bool{
		ElementFire:  true,
		ElementEarth: true,
		ElementAir:   true,
		ElementWater: true,
	}

	// 2020 is a leap year, so Feb 29 is covered too.
	for d := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == 2020; d = d.AddDate(0, 0, 1) {
		sign, element := ResolveZodiac(d.Format(DayFormat))
		assert.NotEqual(t, UnknownSign, sign, "no sign for %s", d.Format(DayFormat))
		assert.True(t, elements[element], "bad element %q for %s", element, d.Format(DayFormat))
	}
}
