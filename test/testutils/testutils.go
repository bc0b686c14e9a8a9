package testutils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/nescli/nescli/cmd"
	"github.com/nescli/nescli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SmokeTest skips the test unless ENABLE_SMOKE_TEST is true.
func SmokeTest(t *testing.T) {
	t.Helper()
	if os.Getenv("ENABLE_SMOKE_TEST") != "true" {
		t.Skip("Skipping smoke test, set ENABLE_SMOKE_TEST=true to run")
	}
}

// Workspace moves into a new folder and returns it with the settings path
// to pass as --config.
func Workspace(t *testing.T) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	t.Chdir(dir)
	return dir, filepath.Join(t.TempDir(), config.ConfigFileName)
}

// Execute runs the root command and returns its output without styling.
func Execute(ctx context.Context, args ...string) (string, error) {
	Cleanup()

	var out bytes.Buffer
	cmd.RootCmd.SetOut(&out)
	cmd.RootCmd.SetErr(&out)
	cmd.RootCmd.SetArgs(args)
	err := cmd.RootCmd.ExecuteContext(ctx)
	return ansi.Strip(out.String()), err
}

// Cleanup puts every flag of the command tree back to its default.
func Cleanup() {
	resetFlags(cmd.RootCmd)
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}
