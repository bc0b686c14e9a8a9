package conf

import (
	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "List templates",
	Long:         `This command lists the saved templates and whether their source file changed since it was saved.`,
	Args:         cobra.NoArgs,
	RunE:         runList,
	SilenceUsage: true,
	Aliases:      []string{"ls"},
}

const listTimeLayout = "2006-01-02 15:04"

type TemplateDetail struct {
	Name        string `json:"name" yaml:"name" table:"Name"`
	Description string `json:"description" yaml:"description" table:"Description"`
	Source      string `json:"source" yaml:"source" table:"Source"`
	Status      string `json:"status" yaml:"status" table:"Status"`
	CreatedAt   string `json:"createdAt" yaml:"createdAt" table:"Created"`
}

func runList(cmd *cobra.Command, args []string) error {
	manager, err := newManager(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}

	list, err := manager.List()
	if err != nil {
		utils.PrintError(err)
		return err
	}

	details := make([]TemplateDetail, 0, len(list))
	for _, tmpl := range list {
		details = append(details, TemplateDetail{
			Name:        tmpl.Name,
			Description: tmpl.Description,
			Source:      tmpl.Source,
			Status:      manager.Status(tmpl).String(),
			CreatedAt:   tmpl.CreatedAt.Local().Format(listTimeLayout),
		})
	}

	printer := common.Printer(cmd)
	if len(details) == 0 && common.Output(cmd) == utils.OutputTable {
		printer.Echo("No templates saved yet.")
		return nil
	}
	return utils.PrintTextTableJsonArrayOutput(cmd.OutOrStdout(), common.Output(cmd), details, printer.TableOpts)
}
