package file

import (
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "file",
	Short: "Create source files",
	Long:  "Create source files with the configured header.",
}

func init() {
	Cmd.AddCommand(pyCmd)
}
