package sys

import (
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "sys",
	Short: "System utilities",
}

func init() {
	Cmd.AddCommand(pathsCmd)
}
