package openweather

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/dev-fortune-service/internal/domain"
	"github.com/couchcryptid/dev-fortune-service/internal/observability"
)

// FallbackProvider wraps a provider so any failure degrades to the fixed
// fallback observation. The error is logged and counted but never returned:
// a degraded weather source must not block fortune generation.
type FallbackProvider struct {
	inner   domain.WeatherProvider
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewFallbackProvider creates the degradation decorator.
func NewFallbackProvider(inner domain.WeatherProvider, metrics *observability.Metrics, logger *slog.Logger) *FallbackProvider {
	return &FallbackProvider{inner: inner, metrics: metrics, logger: logger}
}

func (p *FallbackProvider) Fetch(ctx context.Context, lat, lon float64) (domain.WeatherObservation, error) {
	obs, err := p.inner.Fetch(ctx, lat, lon)
	if err != nil {
		p.logger.Warn("weather provider degraded, serving fallback observation",
			"lat", lat, "lon", lon, "error", err)
		p.metrics.WeatherFallbacks.Inc()
		return domain.FallbackObservation(), nil
	}
	return obs, nil
}

// Static is a provider that always returns a fixed observation. Used when the
// live provider is disabled and by offline tooling.
type Static struct {
	obs domain.WeatherObservation
}

// NewStatic creates a provider pinned to the given observation.
func NewStatic(obs domain.WeatherObservation) *Static {
	return &Static{obs: obs}
}

func (s *Static) Fetch(_ context.Context, _, _ float64) (domain.WeatherObservation, error) {
	return s.obs, nil
}
