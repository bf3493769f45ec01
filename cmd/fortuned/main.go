package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/dev-fortune-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/dev-fortune-service/internal/adapter/kafka"
	"github.com/couchcryptid/dev-fortune-service/internal/adapter/openweather"
	"github.com/couchcryptid/dev-fortune-service/internal/config"
	"github.com/couchcryptid/dev-fortune-service/internal/domain"
	"github.com/couchcryptid/dev-fortune-service/internal/observability"
	"github.com/couchcryptid/dev-fortune-service/internal/service"
	"github.com/couchcryptid/dev-fortune-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open daily store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	// Live weather is feature-flagged via OPENWEATHER_ENABLED / OPENWEATHER_API_KEY.
	// Live fetches go through an LRU cache and degrade to the fixed fallback
	// observation on any provider error.
	var weather domain.WeatherProvider
	if cfg.OpenWeatherEnabled {
		client := openweather.NewClient(cfg.OpenWeatherKey, cfg.OpenWeatherTimeout, metrics, logger)
		cached := openweather.NewCachedProvider(client, cfg.WeatherCacheSize, cfg.WeatherCacheTTL, nil, metrics)
		weather = openweather.NewFallbackProvider(cached, metrics, logger)
		metrics.WeatherEnabled.Set(1)
		logger.Info("openweather enabled",
			"cache_size", cfg.WeatherCacheSize, "cache_ttl", cfg.WeatherCacheTTL, "timeout", cfg.OpenWeatherTimeout)
	} else {
		weather = openweather.NewStatic(domain.FallbackObservation())
		metrics.WeatherEnabled.Set(0)
		logger.Info("openweather disabled, using fallback conditions")
	}

	// Event publishing is feature-flagged via KAFKA_ENABLED.
	var publisher service.EventPublisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaFortuneTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	fortunes := service.New(db, weather, publisher, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, fortunes, fortunes, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}
	if err := db.Close(); err != nil {
		logger.Error("daily store close error", "error", err)
	}

	logger.Info("shutdown complete")
}
