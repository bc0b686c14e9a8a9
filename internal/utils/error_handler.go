package utils

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
)

// PrintError prints err in red on stderr. Commands still return the error
// so the process exits with a non-zero status.
func PrintError(err error) {
	if err == nil {
		return
	}
	log.Debug().Err(err).Msg("command failed")
	_, _ = fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprintf("Error: %s", err.Error()))
}

// PrintWarning prints msg in yellow on stderr.
func PrintWarning(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, color.New(color.FgYellow).Sprintf("Warning: %s", msg))
}
