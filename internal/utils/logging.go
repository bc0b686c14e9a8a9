package utils

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const LogLevelEnv = "NESCLI_LOG_LEVEL"

var configureLoggingOnce sync.Once

// ConfigureLoggingFromEnvOnce sets up the global zerolog logger from
// NESCLI_LOG_LEVEL. Logs go to stderr so they never mix with command output.
func ConfigureLoggingFromEnvOnce() {
	configureLoggingOnce.Do(func() {
		zerolog.SetGlobalLevel(ParseLogLevel(os.Getenv(LogLevelEnv)))
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	})
}

// ParseLogLevel falls back to warn for empty or unknown values.
func ParseLogLevel(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil || value == "" {
		return zerolog.WarnLevel
	}
	return level
}

func IsDebugLogLevel() bool {
	return zerolog.GlobalLevel() <= zerolog.DebugLevel
}
