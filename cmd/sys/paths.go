package sys

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:          "paths",
	Short:        "Print the entries of PATH",
	Long:         `This command prints every entry of the PATH environment variable on its own line.`,
	Args:         cobra.NoArgs,
	RunE:         runPaths,
	SilenceUsage: true,
}

func init() {
	pathsCmd.Flags().StringSlice("paths", nil, "Entries to print instead of PATH")
}

func runPaths(cmd *cobra.Command, args []string) error {
	paths, _ := cmd.Flags().GetStringSlice("paths")
	if !cmd.Flags().Changed("paths") {
		paths = filepath.SplitList(os.Getenv("PATH"))
	}
	for _, path := range paths {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}
