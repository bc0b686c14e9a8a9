package file

import (
	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/echo"
	"github.com/nescli/nescli/internal/fsutil"
	"github.com/nescli/nescli/internal/headers"
	"github.com/nescli/nescli/internal/msgbox"
	"github.com/nescli/nescli/internal/pypkg"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
)

const pyExample = `# Create app.py and demo.py in the current directory
nes file py app demo

# Create tests/test_demo.py in the nearest tests folder
nes file py demo -t`

var pyCmd = &cobra.Command{
	Use:   "py NAMES...",
	Short: "Create python files",
	Long: `This command creates a python file for every name in the current directory.
With --test it creates test_<name>.py files in the nearest tests folder, searching parent folders when needed.`,
	Example:      pyExample,
	RunE:         runPy,
	SilenceUsage: true,
}

func init() {
	pyCmd.Flags().BoolP("verbose", "v", false, "Show every message")
	pyCmd.Flags().BoolP("test", "t", false, "Create test files in the nearest tests folder")
}

func runPy(cmd *cobra.Command, args []string) error {
	printer := common.Printer(cmd)
	if len(args) == 0 {
		printer.Echo("At least one name is required.", echo.ShowPrefix())
		return nil
	}

	store, err := common.OpenStore(cmd)
	if err != nil {
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

	isTest, _ := cmd.Flags().GetBool("test")
	if isTest {
		err = creator.CreateTestModules(args, cwd)
	} else {
		err = creator.CreateModules(args, cwd)
	}
	if err != nil {
		utils.PrintError(err)
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		box.Echo(printer, true)
	}
	printer.Done()
	return nil
}
