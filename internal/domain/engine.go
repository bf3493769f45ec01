package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// commitSuggestions and learningTopics are indexed by draws scaled to their
// length; order is part of the determinism contract and must not change.
var commitSuggestions = []string{
	"Early morning commits bring good luck",
	"Afternoon coding sessions are favored today",
	"Late night commits might introduce bugs",
	"Pair programming is highly recommended",
	"Focus on refactoring existing code",
	"Perfect day for implementing new features",
	"Code reviews will be particularly insightful",
	"Documentation updates are blessed today",
}

var learningTopics = []string{
	"Machine Learning algorithms",
	"System Design patterns",
	"Database optimization",
	"Frontend frameworks",
	"DevOps practices",
	"Security best practices",
	"API design principles",
	"Performance optimization",
}

var luckyLanguages = []string{"JavaScript", "Python", "Go", "Rust", "TypeScript"}

// GenerateFortune derives the daily fortune for a user from their zodiac sign,
// the current weather, and three seeded draws. Pure given the package clock:
// the same (user, UTC day, zodiac, weather) always yields the same record.
func GenerateFortune(sign, element string, weather WeatherObservation, userID string) FortuneRecord {
	day := Today()
	seed := fortuneSeed(userID, day)

	base := Draw(seed)
	weatherDraw := Draw(seed + weather.Condition)
	tempDraw := Draw(seed + formatTemp(weather.TempC))

	return FortuneRecord{
		ID:                     fortuneID(userID, day),
		ZodiacSign:             sign,
		Element:                element,
		ShouldOvertime:         base > overtimeThreshold(element, weather),
		ExpectedBugs:           expectedBugs(weatherDraw, weather),
		CommitAdvice:           commitSuggestions[int(tempDraw*float64(len(commitSuggestions)))],
		CodeQualityScore:       max(10, int((1-base)*100)),
		LearningRecommendation: learningTopics[int(weatherDraw*float64(len(learningTopics)))],
		WeatherInfluence:       weather.Description,
		LuckyLanguage:          luckyLanguages[int(base*float64(len(luckyLanguages)))],
		ProductivityScore:      int((base+(1-weatherDraw))*50) + 25,
	}
}

// overtimeThreshold is element-conditioned: fire signs tolerate overtime in
// heat, water signs in humidity, everyone else flips a fair coin.
func overtimeThreshold(element string, w WeatherObservation) float64 {
	switch element {
	case ElementFire:
		if w.TempC > 25 {
			return 0.3
		}
		return 0.6
	case ElementWater:
		if w.Humidity > 70 {
			return 0.4
		}
		return 0.7
	default:
		return 0.5
	}
}

// expectedBugs scales a draw to 0-9 bugs, with a +2 penalty for rain and a
// temperature penalty (+3 below 10°C, +2 above 30°C, mutually exclusive).
func expectedBugs(weatherDraw float64, w WeatherObservation) int {
	bugs := int(weatherDraw * 10)
	if w.Condition == "Rain" {
		bugs += 2
	}
	switch {
	case w.TempC < 10:
		bugs += 3
	case w.TempC > 30:
		bugs += 2
	}
	return max(0, bugs)
}

// formatTemp renders a temperature as its shortest decimal form ("20", not
// "20.0"), matching the string the seed hash is defined over.
func formatTemp(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

// fortuneID produces a deterministic ID from the user and day. Deterministic
// IDs keep issuance events idempotent downstream — reissuing the same
// (user, day) fortune produces the same ID.
func fortuneID(userID, day string) string {
	hash := sha256.Sum256([]byte(userID + "|" + day))
	return "fortune-" + hex.EncodeToString(hash[:8])
}
