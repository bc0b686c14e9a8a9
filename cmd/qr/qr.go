package qr

import (
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "qr",
	Short: "Print and read QR codes in the terminal",
	Long: wordwrap.WrapString(`Print QR codes in the terminal and read them back from images. A 3x3 code looks like this:

██  ██
  ██
██  ██

The code is only square with a monospace font whose line height equals its size, the default in most editors' terminals.`, 80),
}

func init() {
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(loadCmd)
}
