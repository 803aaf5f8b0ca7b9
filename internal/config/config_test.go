package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/versequest/internal/game"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_PRETTY", "LOG_FILE", "CLIENT_ORIGIN", "VERSES_FILE", "DAILY_SALT", "RNG_SEED", "FEEDBACK_SCALE"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	require.Equal(t, &Config{
		Port:          "5175",
		LogLevel:      "info",
		ClientOrigin:  "http://localhost:5173",
		DailySalt:     "local_dev_salt",
		FeedbackScale: 1.0,
	}, cfg)
	require.Equal(t, game.DefaultDelays, cfg.Delays())
}

func TestLoadOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, c *Config)
	}{
		{"port", "PORT", "9000", func(t *testing.T, c *Config) { require.Equal(t, "9000", c.Port) }},
		{"pretty", "LOG_PRETTY", "true", func(t *testing.T, c *Config) { require.True(t, c.LogPretty) }},
		{"bad pretty", "LOG_PRETTY", "sure", func(t *testing.T, c *Config) { require.False(t, c.LogPretty) }},
		{"seed", "RNG_SEED", "42", func(t *testing.T, c *Config) { require.Equal(t, uint64(42), c.RNGSeed) }},
		{"bad seed", "RNG_SEED", "-1", func(t *testing.T, c *Config) { require.Zero(t, c.RNGSeed) }},
		{"scale", "FEEDBACK_SCALE", "0.5", func(t *testing.T, c *Config) {
			require.Equal(t, 500*time.Millisecond, c.Delays().Ascent)
		}},
		{"negative scale", "FEEDBACK_SCALE", "-2", func(t *testing.T, c *Config) { require.Equal(t, 1.0, c.FeedbackScale) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			tt.check(t, Load())
		})
	}
}

func TestSetupLogging(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn"}
	cfg.SetupLogging(&buf)

	log.Info().Msg("hidden")
	log.Warn().Str("section", "Aleph").Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"section":"Aleph"`)
}
