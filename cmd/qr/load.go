package qr

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/dataaccess"
	"github.com/nescli/nescli/internal/echo"
	"github.com/nescli/nescli/internal/qrcode"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const loadExample = `# Read a local image
nes qr load ./code.png

# Read a remote image and copy the result
nes qr load https://example.com/code.png --copy`

var loadCmd = &cobra.Command{
	Use:          "load PATH|URL",
	Short:        "Read a QR code from an image",
	Long:         `This command decodes the QR code in a PNG, JPEG or GIF image. Remote images are downloaded to a temp file first.`,
	Example:      loadExample,
	Args:         cobra.ExactArgs(1),
	RunE:         runLoad,
	SilenceUsage: true,
}

var (
	copyToClipboard = clipboard.WriteAll
	openURL         = browser.OpenURL
)

func init() {
	loadCmd.Flags().BoolP("copy", "c", false, "Copy the result to the clipboard")
	loadCmd.Flags().Bool("open", false, "Open the result in the browser when it is a URL")
	loadCmd.Flags().Duration("timeout", dataaccess.DefaultTimeout, "Timeout for downloading remote images")
}

func runLoad(cmd *cobra.Command, args []string) error {
	resource := args[0]
	printer := common.Printer(cmd)

	path := resource
	if qrcode.IsURL(resource) {
		printer.Echo("Load image from URL: " + resource)
		timeout, _ := cmd.Flags().GetDuration("timeout")
		client := dataaccess.NewClient(dataaccess.ClientOptions{Timeout: timeout})

		tmp, err := client.DownloadTemp(cmd.Context(), resource, "")
		if err != nil {
			utils.PrintError(err)
			return err
		}
		defer os.Remove(tmp)
		path = tmp
	}

	printer.Echo("parsing...")
	result, err := qrcode.DecodeFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed for parsing resource %s", resource)
		utils.PrintError(err)
		return err
	}

	printer.Echo("Result for resource: " + resource)
	printer.Echo(result, echo.WithColor(color.FgCyan), echo.WithPrefix("  "), echo.Underline())

	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := copyToClipboard(result); err != nil {
			utils.PrintWarning(fmt.Sprintf("failed to copy to clipboard: %v", err))
		} else {
			printer.Echo("Copied to clipboard.")
		}
	}
	if open, _ := cmd.Flags().GetBool("open"); open && qrcode.IsURL(result) {
		if err := openURL(result); err != nil {
			utils.PrintWarning(fmt.Sprintf("failed to open browser: %v", err))
		}
	}
	return nil
}
