package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// fortune service.
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec // labels: outcome={generated,cached,invalid,error}
	FortunesGenerated prometheus.Counter
	FortunesCached    prometheus.Counter

	// Weather provider metrics.
	WeatherFallbacks   prometheus.Counter
	WeatherAPIDuration prometheus.Histogram
	WeatherCache       *prometheus.CounterVec // labels: result={hit,miss}
	WeatherEnabled     prometheus.Gauge

	// Store and event publishing metrics.
	StoreErrors     prometheus.Counter
	EventsPublished prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fortune",
			Name:      "requests_total",
			Help:      "Fortune requests by outcome.",
		}, []string{"outcome"}),
		FortunesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fortune",
			Name:      "fortunes_generated_total",
			Help:      "Total freshly generated fortunes.",
		}),
		FortunesCached: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fortune",
			Name:      "fortunes_cached_total",
			Help:      "Total requests served from the same-day cache.",
		}),
		WeatherFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fortune",
			Name:      "weather_fallbacks_total",
			Help:      "Weather fetches that degraded to the fixed fallback observation.",
		}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fortune",
			Name:      "weather_api_duration_seconds",
			Help:      "OpenWeatherMap request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fortune",
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by result.",
		}, []string{"result"}),
		WeatherEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fortune",
			Name:      "weather_enabled",
			Help:      "1 when the live weather provider is enabled, 0 otherwise.",
		}),
		StoreErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fortune",
			Name:      "store_errors_total",
			Help:      "Daily store read/write failures surfaced to callers.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fortune",
			Name:      "events_published_total",
			Help:      "Fortune-issued events published to Kafka.",
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.FortunesGenerated,
		m.FortunesCached,
		m.WeatherFallbacks,
		m.WeatherAPIDuration,
		m.WeatherCache,
		m.WeatherEnabled,
		m.StoreErrors,
		m.EventsPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RequestsTotal:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fortune", Name: "requests_total"}, []string{"outcome"}),
		FortunesGenerated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fortune", Name: "fortunes_generated_total"}),
		FortunesCached:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fortune", Name: "fortunes_cached_total"}),
		WeatherFallbacks:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fortune", Name: "weather_fallbacks_total"}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fortune", Name: "weather_api_duration_seconds",
		}),
		WeatherCache:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fortune", Name: "weather_cache_total"}, []string{"result"}),
		WeatherEnabled:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "fortune", Name: "weather_enabled"}),
		StoreErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fortune", Name: "store_errors_total"}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fortune", Name: "events_published_total"}),
	}
}
