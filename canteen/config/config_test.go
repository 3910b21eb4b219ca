package config

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_USER", "canteen")
	t.Setenv("KAFKA_ADDRS", "k1:9092,k2:9092")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BREAKER_COOLDOWN", "30s")

	var cfg Config
	WithWriteTimeout(time.Minute)(&cfg)
	WithLogLevel(zapcore.ErrorLevel)(&cfg)
	require.NoError(t, envconfig.Process("", &cfg))

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, "postgres", cfg.Store.Driver)
	require.Equal(t, "canteen", cfg.Database.Username)
	require.Equal(t, "5432", cfg.Database.Port)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Addrs)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, 30*time.Second, cfg.Breaker.Cooldown)
	require.Equal(t, 20, cfg.Breaker.Window)
	require.Equal(t, time.UTC, cfg.Location())
}

func TestConfig_Location(t *testing.T) {
	require.Equal(t, time.UTC, Config{TimeZone: "Nowhere/Invalid"}.Location())
	require.Equal(t, time.UTC, Config{TimeZone: "UTC"}.Location())
}
