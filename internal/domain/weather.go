package domain

import "context"

// WeatherProvider supplies the current observation for a coordinate pair.
// Implementations may fail; callers that need availability over accuracy wrap
// a provider so failures degrade to [FallbackObservation].
type WeatherProvider interface {
	Fetch(ctx context.Context, lat, lon float64) (WeatherObservation, error)
}
