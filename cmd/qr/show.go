package qr

import (
	"os"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/config"
	"github.com/nescli/nescli/internal/qrcode"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ErrKeyNotCached = errors.New("key is not cached")

const showExample = `# Print a URL as a QR code
nes qr show https://example.com

# Print a cached value and also save it as an image
nes qr show wifi --save wifi.png`

var showCmd = &cobra.Command{
	Use:          "show KEY|URL",
	Short:        "Print a QR code",
	Long:         `This command prints the value cached under KEY, or the given URL, as a QR code.`,
	Example:      showExample,
	Args:         cobra.ExactArgs(1),
	RunE:         runShow,
	SilenceUsage: true,
}

func init() {
	showCmd.Flags().String("save", "", "Also write the code to a PNG file")
	showCmd.Flags().Int("size", 256, "Size in pixels of the saved image")
}

func runShow(cmd *cobra.Command, args []string) error {
	content := args[0]
	if !qrcode.IsURL(content) {
		store, err := common.OpenStore(cmd)
		if err != nil {
			utils.PrintError(err)
			return err
		}
		value := store.GetString(config.KeyQRPrefix + content)
		if value == "" {
			err = errors.Wrapf(ErrKeyNotCached, "%q", content)
			utils.PrintError(err)
			return err
		}
		content = value
	}

	if err := qrcode.Fprint(cmd.OutOrStdout(), content); err != nil {
		utils.PrintError(err)
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		size, _ := cmd.Flags().GetInt("size")
		data, err := qrcode.PNG(content, size)
		if err == nil {
			err = errors.Wrapf(os.WriteFile(path, data, 0o644), "failed to write %s", path)
		}
		if err != nil {
			utils.PrintError(err)
			return err
		}
	}
	return nil
}
