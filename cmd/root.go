package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/cmd/conf"
	"github.com/nescli/nescli/cmd/file"
	"github.com/nescli/nescli/cmd/pkg"
	"github.com/nescli/nescli/cmd/qr"
	"github.com/nescli/nescli/cmd/sys"
	"github.com/nescli/nescli/cmd/table"
	"github.com/nescli/nescli/cmd/tree"
	"github.com/nescli/nescli/cmd/wrap"
	"github.com/nescli/nescli/internal/config"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
)

const versionDescription = "nescli %s"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "nes",
	Short: "A personal toolbox for the terminal",
	Long: wordwrap.WrapString(`
nescli collects small helpers for everyday work in the terminal.

Key Features:
- Python scaffolding: Create packages, modules and test modules with a file header.
- Config templates: Keep config files in one place and copy them into new projects.
- Tables and text: Render CSV as box tables and wrap text by display width, CJK included.
- QR codes: Print QR codes in the terminal and read them back from images or URLs.
- Directory trees: Print a folder as a tree.

Settings live in ~/.nescli.conf, set NESCLI_LOG_LEVEL=debug to see what happens.

Available Commands:

`, 100),
	Run:               runRoot,
	DisableAutoGenTag: true,
	Aliases:           []string{"nescli"},
}

func runRoot(cmd *cobra.Command, args []string) {
	versionFlag, err := cmd.Flags().GetBool("version")
	if err == nil && versionFlag {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), versionDescription+"\n", config.Version)
		return
	}

	printLogo(cmd)
	_ = cmd.Help()
}

// printLogo prints an ASCII logo, which was generated with figlet
func printLogo(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out)
	colors := []color.Attribute{
		color.FgRed, color.FgYellow, color.FgGreen, color.FgCyan, color.FgBlue, color.FgMagenta,
	}
	for i, r := range figletStr {
		_, _ = fmt.Fprint(out, color.New(colors[i%len(colors)]).Sprint(string(r)))
	}
}

const figletStr = `                        ___ 
  ___  ___  ___ ____/ (_)
 / _ \/ -_|_-</ __/ / / 
/_//_/\__/___/\__/_/_/  

`

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx := context.Background()
	utils.ConfigureLoggingFromEnvOnce()
	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().BoolP("version", "v", false, "Print the version number of nescli")
	RootCmd.PersistentFlags().StringP(common.FlagOutput, "o", utils.OutputTable, "Output format (table|text|json|yaml)")
	RootCmd.PersistentFlags().String(common.FlagConfig, "", "Path of the settings file (default ~/.nescli.conf)")
	RootCmd.PersistentFlags().BoolP(common.FlagYes, "y", false, "Answer yes to every confirmation")

	RootCmd.AddCommand(pkg.Cmd)
	RootCmd.AddCommand(file.Cmd)
	RootCmd.AddCommand(conf.Cmd)
	RootCmd.AddCommand(tree.Cmd)
	RootCmd.AddCommand(qr.Cmd)
	RootCmd.AddCommand(sys.Cmd)
	RootCmd.AddCommand(table.Cmd)
	RootCmd.AddCommand(wrap.Cmd)

	// Hide the default completion command
	RootCmd.Root().CompletionOptions.DisableDefaultCmd = true
}
