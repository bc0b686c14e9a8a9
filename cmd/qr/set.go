package qr

import (
	"fmt"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/config"
	"github.com/nescli/nescli/internal/utils"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:          "set KEY VALUE",
	Short:        "Cache a value under a key",
	Long:         `This command caches VALUE, usually a URL, so that "nes qr show KEY" prints it as a QR code.`,
	Example:      `nes qr set wifi "WIFI:T:WPA;S:home;P:secret;;"`,
	Args:         cobra.ExactArgs(2),
	RunE:         runSet,
	SilenceUsage: true,
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	store, err := common.OpenStore(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	printer := common.Printer(cmd)

	old := store.GetString(config.KeyQRPrefix + key)
	if old == value {
		return nil
	}
	if old != "" {
		ok, err := printer.Confirm(fmt.Sprintf("KEY: %q is already set to: %q. Replace it with: %q?", key, old, value))
		if err != nil {
			utils.PrintError(err)
			return err
		}
		if !ok {
			printer.Echo("Canceled.")
			return nil
		}
	}

	if err := store.Set(config.KeyQRPrefix+key, value); err != nil {
		utils.PrintError(err)
		return err
	}
	printer.Echo(fmt.Sprintf("cached: %s=%s.", key, value))
	return nil
}
