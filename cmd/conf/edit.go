package conf

import (
	"fmt"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:          "edit NAME",
	Short:        "Change a template",
	Long:         `This command changes the description of a template or captures its source file again.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runEdit,
	SilenceUsage: true,
}

func init() {
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().StringP("source", "s", "", "New source file; the current one is read again with --refresh")
	editCmd.Flags().BoolP("refresh", "r", false, "Capture the source file again")
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := args[0]
	description, _ := cmd.Flags().GetString("description")
	source, _ := cmd.Flags().GetString("source")
	refresh, _ := cmd.Flags().GetBool("refresh")

	if description == "" && source == "" && !refresh {
		err := errors.New("nothing to change, pass --description, --source or --refresh")
		utils.PrintError(err)
		return err
	}

	manager, err := newManager(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}

	if refresh && source == "" {
		tmpl, err := manager.Get(name)
		if err != nil {
			utils.PrintError(err)
			return err
		}
		source = tmpl.Source
	}

	tmpl, err := manager.Update(name, description, source)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	common.Printer(cmd).Echo(fmt.Sprintf("Template %q updated.", tmpl.Name))
	return nil
}
