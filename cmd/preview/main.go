// Command preview generates a fortune offline, without the HTTP server, daily
// store, or a live weather provider. It is a development aid for inspecting
// what a given user would be dealt on a given day under given conditions.
//
// Usage:
//
//	go run ./cmd/preview \
//	  -birth-date 1995-07-15 \
//	  -user abc123 \
//	  -day 2024-04-26 \
//	  -condition Rain -description "light rain" -temp 5 -humidity 80 -wind 7
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/dev-fortune-service/internal/domain"
)

func main() {
	birthDate := flag.String("birth-date", "", "user birth date (YYYY-MM-DD)")
	userID := flag.String("user", "", "opaque user identifier")
	day := flag.String("day", "", "calendar day to preview (YYYY-MM-DD, default today)")
	condition := flag.String("condition", "", "weather condition label (default fallback conditions)")
	description := flag.String("description", "", "weather description")
	temp := flag.Float64("temp", 20, "temperature in Celsius")
	humidity := flag.Int("humidity", 50, "relative humidity percent")
	wind := flag.Float64("wind", 5, "wind speed")
	flag.Parse()

	if *birthDate == "" || *userID == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*birthDate, *userID, *day, *condition, *description, *temp, *humidity, *wind); code != 0 {
		os.Exit(code)
	}
}

func run(birthDate, userID, day, condition, description string, temp float64, humidity int, wind float64) int {
	if day != "" {
		at, err := time.Parse(domain.DayFormat, day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -day %q: %v\n", day, err)
			return 1
		}
		domain.SetClock(clockwork.NewFakeClockAt(at.Add(12 * time.Hour)))
		defer domain.SetClock(nil)
	}

	weather := domain.FallbackObservation()
	if condition != "" {
		weather = domain.WeatherObservation{
			Condition:   condition,
			Description: description,
			TempC:       temp,
			Humidity:    humidity,
			WindSpeed:   wind,
		}
	}

	sign, element := domain.ResolveZodiac(birthDate)
	fortune := domain.GenerateFortune(sign, element, weather, userID)

	out, err := json.MarshalIndent(fortune, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal fortune: %v\n", err)
		return 1
	}

	fmt.Printf("day:     %s\n", domain.Today())
	fmt.Printf("weather: %s (%s), %.1f°C\n", weather.Condition, weather.Description, weather.TempC)
	fmt.Println(string(out))
	return 0
}
