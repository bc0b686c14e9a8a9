package conf

import (
	"fmt"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:          "rm NAME...",
	Short:        "Remove templates",
	Long:         `This command removes the templates and their copies in the template folder.`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runRemove,
	SilenceUsage: true,
	Aliases:      []string{"remove"},
}

func runRemove(cmd *cobra.Command, args []string) error {
	manager, err := newManager(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	printer := common.Printer(cmd)

	for _, name := range args {
		removed, err := manager.Remove(name)
		if err != nil {
			utils.PrintError(err)
			return err
		}
		if removed {
			printer.Echo(fmt.Sprintf("Template %q removed.", name))
		} else {
			utils.PrintWarning(fmt.Sprintf("Template %q does not exist.", name))
		}
	}
	return nil
}
