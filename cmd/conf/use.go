package conf

import (
	"fmt"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/fsutil"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const useExample = `# Copy the "pylint" template into the current directory
nes conf use pylint

# Copy it to a given file, replacing it
nes conf use pylint ./service/.pylintrc --force`

var useCmd = &cobra.Command{
	Use:          "use NAME [DEST]",
	Short:        "Copy a template into a project",
	Long:         `This command copies the template to DEST, the current directory by default. A directory receives the file under its original name.`,
	Example:      useExample,
	Args:         cobra.RangeArgs(1, 2),
	RunE:         runUse,
	SilenceUsage: true,
}

func init() {
	useCmd.Flags().BoolP("force", "f", false, "Replace an existing file without asking")
}

func runUse(cmd *cobra.Command, args []string) error {
	name, dest := args[0], "."
	if len(args) > 1 {
		dest = args[1]
	}
	force, _ := cmd.Flags().GetBool("force")

	manager, err := newManager(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	printer := common.Printer(cmd)

	path, err := manager.Use(name, dest, force)
	if errors.Is(err, fsutil.ErrExists) {
		ok, perr := printer.Confirm(fmt.Sprintf("%v. Replace it?", err))
		if perr != nil {
			utils.PrintError(perr)
			return perr
		}
		if !ok {
			printer.Echo("Canceled.")
			return nil
		}
		path, err = manager.Use(name, dest, true)
	}
	if err != nil {
		utils.PrintError(err)
		return err
	}
	printer.Echo(fmt.Sprintf("Template %q copied to %s.", name, path))
	return nil
}
