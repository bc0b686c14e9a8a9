package common

import (
	"io"
	"os"

	"github.com/nescli/nescli/internal/boxtable"
	"github.com/nescli/nescli/internal/config"
	"github.com/nescli/nescli/internal/echo"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Persistent flags registered on the root command.
const (
	FlagConfig = "config"
	FlagOutput = "output"
	FlagYes    = "yes"
)

// flagValue looks name up in the command's own and inherited flags.
func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}

// OpenStore opens the store named by --config, or ~/.nescli.conf.
func OpenStore(cmd *cobra.Command) (*config.Store, error) {
	path := flagValue(cmd, FlagConfig)
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.Open(path)
}

func Output(cmd *cobra.Command) string {
	if output := flagValue(cmd, FlagOutput); output != "" {
		return output
	}
	return utils.OutputTable
}

// Prompter answers yes with --yes, asks on a terminal and declines
// otherwise.
func Prompter(cmd *cobra.Command) utils.Prompter {
	if flagValue(cmd, FlagYes) == "true" {
		return utils.Always(true)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return utils.Always(false)
	}
	return utils.HuhPrompter{}
}

// Printer writes to the command's output with tables sized to the terminal.
func Printer(cmd *cobra.Command) *echo.Printer {
	p := echo.New(cmd.OutOrStdout())
	p.Prompter = Prompter(cmd)
	p.TableOpts.MaxWidth = TerminalWidth(cmd.OutOrStdout(), boxtable.DefaultMaxWidth)
	return p
}

// TerminalWidth returns the width of w when it is a terminal, else fallback.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
