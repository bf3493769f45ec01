// Package service orchestrates daily fortune requests: validate, consult the
// once-per-day cache, generate, persist, and optionally publish an issuance
// event.
package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/dev-fortune-service/internal/domain"
	"github.com/couchcryptid/dev-fortune-service/internal/observability"
)

// ErrValidation marks a request missing required fields. Surfaced as a client
// error; nothing is generated or persisted.
var ErrValidation = errors.New("missing required fields")

// lockStripes bounds memory for per-user serialization. Users hashing to the
// same stripe serialize against each other, which only costs latency.
const lockStripes = 64

// DailyStore persists per-user daily access state. Implementations must
// surface read/write failures; the service never papers over them.
type DailyStore interface {
	GetEntry(ctx context.Context, userID string) (*domain.DailyAccessEntry, error)
	RecordAccess(ctx context.Context, userID string, fortune domain.FortuneRecord, issuedAt time.Time) error
	Ping(ctx context.Context) error
}

// EventPublisher emits fortune-issued events. Optional; a nil publisher
// disables publishing.
type EventPublisher interface {
	PublishIssued(ctx context.Context, userID string, fortune domain.FortuneRecord, issuedAt time.Time) error
}

// Request carries the inputs for a daily fortune. Latitude and longitude are
// pointers so an absent coordinate is distinguishable from a zero one (the
// equator is a valid place to write code).
type Request struct {
	BirthDate string   `json:"birthDate"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	UserID    string   `json:"userHash"`
}

func (r Request) validate() error {
	if r.BirthDate == "" || r.UserID == "" || r.Latitude == nil || r.Longitude == nil {
		return ErrValidation
	}
	return nil
}

// Result is a fortune plus whether it was served from the same-day cache.
type Result struct {
	Fortune       domain.FortuneRecord
	AlreadyIssued bool
}

// Fortune is the daily fortune use case.
type Fortune struct {
	store     DailyStore
	weather   domain.WeatherProvider
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	locks     [lockStripes]sync.Mutex
}

// New creates the fortune service. publisher may be nil.
func New(store DailyStore, weather domain.WeatherProvider, publisher EventPublisher, logger *slog.Logger, metrics *observability.Metrics) *Fortune {
	return &Fortune{
		store:     store,
		weather:   weather,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness reports whether the daily store is reachable.
func (s *Fortune) CheckReadiness(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Daily returns the user's fortune for the current UTC day. The first request
// of a day generates and persists a fresh fortune; repeats return the stored
// record unchanged, flagged AlreadyIssued. The check-generate-record sequence
// is serialized per user identifier so concurrent first requests cannot both
// generate; requests for different users do not contend (modulo stripe
// collisions).
func (s *Fortune) Daily(ctx context.Context, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		s.metrics.RequestsTotal.WithLabelValues("invalid").Inc()
		return Result{}, err
	}

	lock := s.lockFor(req.UserID)
	lock.Lock()
	defer lock.Unlock()

	today := domain.Today()

	entry, err := s.store.GetEntry(ctx, req.UserID)
	if err != nil {
		s.metrics.StoreErrors.Inc()
		s.metrics.RequestsTotal.WithLabelValues("error").Inc()
		return Result{}, fmt.Errorf("read daily store: %w", err)
	}
	if entry != nil && entry.IssuedOn(today) {
		s.metrics.FortunesCached.Inc()
		s.metrics.RequestsTotal.WithLabelValues("cached").Inc()
		return Result{Fortune: entry.LastFortune, AlreadyIssued: true}, nil
	}

	sign, element := domain.ResolveZodiac(req.BirthDate)

	// The wired provider degrades to the fixed fallback internally; an error
	// here means the service was assembled with a bare client, so degrade the
	// same way rather than failing the fortune.
	weather, err := s.weather.Fetch(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		s.logger.Warn("weather fetch failed, using fallback observation", "user_id", req.UserID, "error", err)
		s.metrics.WeatherFallbacks.Inc()
		weather = domain.FallbackObservation()
	}

	fortune := domain.GenerateFortune(sign, element, weather, req.UserID)

	issuedAt := domain.Now()
	if err := s.store.RecordAccess(ctx, req.UserID, fortune, issuedAt); err != nil {
		s.metrics.StoreErrors.Inc()
		s.metrics.RequestsTotal.WithLabelValues("error").Inc()
		return Result{}, fmt.Errorf("record daily access: %w", err)
	}

	s.metrics.FortunesGenerated.Inc()
	s.metrics.RequestsTotal.WithLabelValues("generated").Inc()
	s.logger.Info("fortune issued",
		"user_id", req.UserID,
		"fortune_id", fortune.ID,
		"zodiac", fortune.ZodiacSign,
		"weather", weather.Condition,
	)

	s.publishIssued(ctx, req.UserID, fortune, issuedAt)

	return Result{Fortune: fortune}, nil
}

// publishIssued emits the issuance event best-effort: the fortune is already
// persisted, so a publish failure must not fail the request.
func (s *Fortune) publishIssued(ctx context.Context, userID string, fortune domain.FortuneRecord, issuedAt time.Time) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishIssued(ctx, userID, fortune, issuedAt); err != nil {
		s.logger.Warn("publish fortune event failed", "fortune_id", fortune.ID, "error", err)
		return
	}
	s.metrics.EventsPublished.Inc()
}

func (s *Fortune) lockFor(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID)) //nolint:errcheck // fnv never fails
	return &s.locks[h.Sum32()%lockStripes]
}
