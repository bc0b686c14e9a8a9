package utils

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zerolog.Level{
		"":        zerolog.WarnLevel,
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.WarnLevel,
	}
	for input, expected := range tests {
		require.Equal(t, expected, ParseLogLevel(input), "input %q", input)
	}
}
