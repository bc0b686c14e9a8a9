package conf

import (
	"fmt"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
)

const setExample = `# Save ./.pylintrc as the template "pylint"
nes conf set pylint ./.pylintrc -d "lint defaults"`

var setCmd = &cobra.Command{
	Use:          "set NAME SOURCE",
	Short:        "Save a file as a template",
	Long:         `This command copies SOURCE into the template folder under NAME, replacing any template of the same name.`,
	Example:      setExample,
	Args:         cobra.ExactArgs(2),
	RunE:         runSet,
	SilenceUsage: true,
}

func init() {
	setCmd.Flags().StringP("description", "d", "", "Description of the template")
}

func runSet(cmd *cobra.Command, args []string) error {
	name, source := args[0], args[1]
	description, _ := cmd.Flags().GetString("description")

	manager, err := newManager(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	printer := common.Printer(cmd)

	if existing, err := manager.Get(name); err == nil {
		ok, err := printer.Confirm(fmt.Sprintf("Template %q already points to %s. Replace it?", name, existing.Source))
		if err != nil {
			utils.PrintError(err)
			return err
		}
		if !ok {
			printer.Echo("Canceled.")
			return nil
		}
	}

	tmpl, err := manager.Set(name, source, description)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	printer.Echo(fmt.Sprintf("Template %q saved from %s.", tmpl.Name, tmpl.Source))
	return nil
}
