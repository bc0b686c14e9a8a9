package tree

import (
	"fmt"
	"path/filepath"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/tree"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
)

const treeExample = `# Print the current directory three levels deep
nes tree -d 3

# Include hidden files and folders
nes tree ./src --hidden`

var Cmd = &cobra.Command{
	Use:          "tree [TARGET]",
	Short:        "Print a directory tree",
	Long:         `This command prints the folders and files below TARGET, the current directory by default.`,
	Example:      treeExample,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runTree,
	SilenceUsage: true,
}

func init() {
	Cmd.Flags().IntP("depth", "d", tree.DefaultDepth, "Maximum depth to walk, 0 for no limit")
	Cmd.Flags().BoolP("hidden", "a", false, "Show hidden files and folders")
}

func runTree(cmd *cobra.Command, args []string) error {
	opts, err := tree.OptionsFromFlags(cmd.Flags())
	if err != nil {
		utils.PrintError(err)
		return err
	}

	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		utils.PrintError(err)
		return err
	}

	lines, err := tree.Walk(root, opts)
	if err != nil {
		utils.PrintError(err)
		return err
	}

	printer := common.Printer(cmd)
	if len(lines) == 0 {
		printer.Error(fmt.Sprintf("Target directory %q is empty.", root))
		return nil
	}
	printer.PrintTitle(fmt.Sprintf("Structure for path %q", root))
	return tree.Print(cmd.OutOrStdout(), root, lines)
}
