package conf

import (
	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/templates"
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "conf",
	Short: "Manage config file templates",
	Long: `Keep copies of config files such as .pylintrc or .editorconfig in the template folder
and copy them into new projects.`,
}

func init() {
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(useCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(editCmd)
}

func newManager(cmd *cobra.Command) (*templates.Manager, error) {
	store, err := common.OpenStore(cmd)
	if err != nil {
		return nil, err
	}
	return templates.NewManager(store), nil
}
