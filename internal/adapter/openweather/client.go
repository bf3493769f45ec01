// Package openweather adapts the OpenWeatherMap current-weather API to
// domain.WeatherProvider, with decorators for caching and degrading to the
// fixed fallback observation.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/dev-fortune-service/internal/domain"
	"github.com/couchcryptid/dev-fortune-service/internal/observability"
)

// Client implements domain.WeatherProvider using the OpenWeatherMap
// current-weather endpoint. Failures are returned as errors; wrap with
// [NewFallbackProvider] to degrade instead.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. The timeout bounds the whole
// request; the caller never waits longer than this for live weather.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch returns the current observation for the coordinate pair, in metric units.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (domain.WeatherObservation, error) {
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.WeatherObservation{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.WeatherAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.WeatherObservation{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.WeatherObservation{}, fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	var owResp response
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return domain.WeatherObservation{}, fmt.Errorf("decode response: %w", err)
	}

	if len(owResp.Weather) == 0 {
		return domain.WeatherObservation{}, errors.New("openweather response has no weather conditions")
	}

	return domain.WeatherObservation{
		Condition:   owResp.Weather[0].Main,
		Description: owResp.Weather[0].Description,
		TempC:       owResp.Main.Temp,
		Humidity:    owResp.Main.Humidity,
		WindSpeed:   owResp.Wind.Speed,
	}, nil
}

// OpenWeatherMap API response types.

type response struct {
	Weather []condition `json:"weather"`
	Main    mainBlock   `json:"main"`
	Wind    wind        `json:"wind"`
}

type condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type mainBlock struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

type wind struct {
	Speed float64 `json:"speed"`
}
