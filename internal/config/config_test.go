package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWeatherKey = "ow-test-key"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "data/fortunes.db", cfg.DBPath)
	assert.False(t, cfg.OpenWeatherEnabled)
	assert.Empty(t, cfg.OpenWeatherKey)
	assert.Equal(t, 5*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, 1000, cfg.WeatherCacheSize)
	assert.Equal(t, 10*time.Minute, cfg.WeatherCacheTTL)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "fortunes-issued", cfg.KafkaFortuneTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("DB_PATH", "/tmp/fortunes.db")
	t.Setenv("OPENWEATHER_API_KEY", testWeatherKey)
	t.Setenv("OPENWEATHER_TIMEOUT", "2s")
	t.Setenv("WEATHER_CACHE_SIZE", "250")
	t.Setenv("WEATHER_CACHE_TTL", "5m")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_FORTUNE_TOPIC", "custom-fortunes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/tmp/fortunes.db", cfg.DBPath)
	assert.True(t, cfg.OpenWeatherEnabled)
	assert.Equal(t, testWeatherKey, cfg.OpenWeatherKey)
	assert.Equal(t, 2*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, 250, cfg.WeatherCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.WeatherCacheTTL)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-fortunes", cfg.KafkaFortuneTopic)
}

func TestLoad_WeatherEnabledByKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testWeatherKey)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.OpenWeatherEnabled)
}

func TestLoad_WeatherExplicitlyDisabled(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testWeatherKey)
	t.Setenv("OPENWEATHER_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.OpenWeatherEnabled)
}

func TestLoad_WeatherEnabledWithoutKey(t *testing.T) {
	t.Setenv("OPENWEATHER_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeWeatherTimeout(t *testing.T) {
	t.Setenv("OPENWEATHER_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_TIMEOUT")
}

func TestLoad_KafkaEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", " , ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}
