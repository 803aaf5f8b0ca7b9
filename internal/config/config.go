// internal/config/config.go
//
// Process configuration read from the environment (and .env via godotenv in
// the binaries). Unparseable numbers fall back to their defaults with a warning.

package config

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/versequest/internal/game"
)

// Config holds application configuration
type Config struct {
	Port          string
	LogLevel      string
	LogPretty     bool
	LogFile       string
	ClientOrigin  string
	VersesFile    string
	DailySalt     string
	RNGSeed       uint64
	FeedbackScale float64
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPretty:     getBool("LOG_PRETTY", false),
		LogFile:       getEnv("LOG_FILE", ""),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		VersesFile:    getEnv("VERSES_FILE", ""),
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),
		RNGSeed:       getUint("RNG_SEED", 0),
		FeedbackScale: getFloat("FEEDBACK_SCALE", 1.0),
	}
}

// Delays returns the engine feedback durations scaled by FeedbackScale.
func (c *Config) Delays() game.Delays {
	if c.FeedbackScale <= 0 || c.FeedbackScale == 1 {
		return game.DefaultDelays
	}
	return game.DefaultDelays.Scale(c.FeedbackScale)
}

// SetupLogging sets the global zerolog level and output.
// A nil w keeps stderr.
func (c *Config) SetupLogging(w io.Writer) {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if w == nil {
		w = os.Stderr
	}
	if c.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid bool, using default")
		return def
	}
	return b
}

func getUint(key string, def uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer, using default")
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid number, using default")
		return def
	}
	return f
}
