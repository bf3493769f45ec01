package domain

import (
	"time"
)

// WeatherObservation is a current-conditions snapshot for a coordinate pair.
// Condition is the provider's coarse label ("Clear", "Rain", ...); Description
// is the human-readable variant ("clear sky", "light rain").
type WeatherObservation struct {
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// FallbackObservation returns the fixed synthetic observation substituted when
// the live weather provider fails. Keeping fortune generation available during
// provider outages is a deliberate contract, not an error path.
func FallbackObservation() WeatherObservation {
	return WeatherObservation{
		Condition:   "Clear",
		Description: "clear sky",
		TempC:       20,
		Humidity:    50,
		WindSpeed:   5,
	}
}

// FortuneRecord is the computed daily fortune. Immutable once created; the
// daily store returns it verbatim on same-day repeat requests.
type FortuneRecord struct {
	ID                     string `json:"id"`
	ZodiacSign             string `json:"zodiacSign"`
	Element                string `json:"element"`
	ShouldOvertime         bool   `json:"shouldOvertime"`
	ExpectedBugs           int    `json:"expectedBugs"`
	CommitAdvice           string `json:"commitAdvice"`
	CodeQualityScore       int    `json:"codeQualityScore"`
	LearningRecommendation string `json:"learningRecommendation"`
	WeatherInfluence       string `json:"weatherInfluence"`
	LuckyLanguage          string `json:"luckyLanguage"`
	ProductivityScore      int    `json:"productivityScore"`
}

// DailyAccessEntry is the per-user persisted state: when the last fortune was
// issued and what it was. Overwritten on each new day's issuance; no history.
type DailyAccessEntry struct {
	UserID      string        `json:"user_id"`
	LastAccess  time.Time     `json:"last_access"`
	LastFortune FortuneRecord `json:"last_fortune"`
}

// IssuedOn reports whether the entry's last issuance falls on the given UTC
// calendar day ("2006-01-02").
func (e *DailyAccessEntry) IssuedOn(day string) bool {
	return e.LastAccess.UTC().Format(DayFormat) == day
}
