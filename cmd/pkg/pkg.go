package pkg

import (
	"fmt"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/config"
	"github.com/nescli/nescli/internal/echo"
	"github.com/nescli/nescli/internal/fsutil"
	"github.com/nescli/nescli/internal/headers"
	"github.com/nescli/nescli/internal/msgbox"
	"github.com/nescli/nescli/internal/pypkg"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
)

const pkgExample = `# Create the packages core and api in the current directory
nes pkg core api

# Create project/core, turning project into a package when needed
nes pkg -p ./project/core

# Lay out a basic project in the current directory
nes pkg -s`

var Cmd = &cobra.Command{
	Use:   "pkg [NAMES...]",
	Short: "Quickly create python packages",
	Long: `This command creates a folder with an __init__.py file for every name.
Existing folders are turned into packages and missing parents are created as packages too.`,
	Example:      pkgExample,
	RunE:         runPkg,
	SilenceUsage: true,
}

func init() {
	Cmd.Flags().BoolP("path", "p", false, "Treat names as paths, like ./project/core")
	Cmd.Flags().BoolP("verbose", "v", false, "Show every message")
	Cmd.Flags().BoolP("info", "i", false, "Show the user, email and header settings")
	Cmd.Flags().StringP("user", "u", "", "Set the author written in file headers")
	Cmd.Flags().StringP("mail", "m", "", "Set the email written in file headers")
	Cmd.Flags().BoolP("no-header", "H", false, "Stop writing headers into new files")
	Cmd.Flags().Bool("header", false, "Write headers into new files")
	Cmd.Flags().BoolP("setup", "s", false, "Set up <project>/<project>, tests and app.py in the current directory")

	Cmd.MarkFlagsMutuallyExclusive("header", "no-header")
}

func runPkg(cmd *cobra.Command, args []string) error {
	store, err := common.OpenStore(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	printer := common.Printer(cmd)

	done, err := applySettings(cmd, store, printer)
	if err != nil || done {
		utils.PrintError(err)
		return err
	}

	cwd, err := pypkg.Cwd()
	if err != nil {
		utils.PrintError(err)
		return err
	}

	box := msgbox.New()
	creator := pypkg.Creator{
		Files:  fsutil.Helper{Box: box, Prompter: printer.Prompter},
		Header: headers.NewPythonHeader(store),
	}

	if setup, _ := cmd.Flags().GetBool("setup"); setup {
		if err := creator.SetupProject(cwd); err != nil {
			utils.PrintError(err)
			return err
		}
		box.Echo(printer, true)
		return nil
	}

	if len(args) == 0 {
		printer.Echo("At least one name is required.", echo.ShowPrefix())
		return nil
	}

	isPath, _ := cmd.Flags().GetBool("path")
	result, err := creator.Create(args, isPath, cwd)
	if err != nil {
		utils.PrintError(err)
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	box.Echo(printer, verbose)
	printer.Echo(result.String(), echo.NoPrefix())
	return nil
}

// applySettings handles the flags that only change the store. It reports
// whether the command is finished.
func applySettings(cmd *cobra.Command, store *config.Store, printer *echo.Printer) (bool, error) {
	if info, _ := cmd.Flags().GetBool("info"); info {
		printer.PrintTitle("CONFIG INFO:")
		rows := [][]string{{"Key", "Value"}}
		for _, key := range []string{config.KeyUser, config.KeyEmail, config.KeyAddHeader} {
			value, _ := store.Get(key)
			rows = append(rows, []string{key, fmt.Sprint(value)})
		}
		return true, printer.Table(rows, true)
	}

	done := false
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		if err := store.Set(config.KeyUser, user); err != nil {
			return true, err
		}
		printer.Echo(fmt.Sprintf("USERNAME is set to %q", user))
		done = true
	}
	if mail, _ := cmd.Flags().GetString("mail"); mail != "" {
		if err := store.Set(config.KeyEmail, mail); err != nil {
			return true, err
		}
		printer.Echo(fmt.Sprintf("EMAIL is set to %q", mail))
		done = true
	}
	for flag, value := range map[string]bool{"header": true, "no-header": false} {
		if set, _ := cmd.Flags().GetBool(flag); !set {
			continue
		}
		if err := store.Set(config.KeyAddHeader, value); err != nil {
			return true, err
		}
		state := "OFF"
		if value {
			state = "ON"
		}
		printer.Echo("File header is " + state)
		done = true
	}
	return done, nil
}
