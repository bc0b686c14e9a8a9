package wrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/nescli/nescli/internal/textlayout"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const wrapExample = `# Wrap mixed CJK and latin text to six columns
nes wrap "这是一段目标文字, this is a test text" --width 6

# Wrap stdin
cat notes.txt | nes wrap -w 40`

var Cmd = &cobra.Command{
	Use:   "wrap [TEXT...]",
	Short: "Wrap text to a display width",
	Long: `This command splits TEXT, or stdin, into lines no wider than --width terminal columns.
CJK ideographs count as two columns and words are kept whole where possible.`,
	Example:      wrapExample,
	RunE:         runWrap,
	SilenceUsage: true,
}

func init() {
	Cmd.Flags().IntP("width", "w", 80, "Maximum display width of a line")
	Cmd.Flags().Bool("wide", false, "Measure all East Asian wide characters as two columns")
	Cmd.Flags().BoolP("number", "n", false, "Prefix every line with its display width")
}

func runWrap(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	wide, _ := cmd.Flags().GetBool("wide")
	number, _ := cmd.Flags().GetBool("number")

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			err = errors.Wrap(err, "failed to read stdin")
			utils.PrintError(err)
			return err
		}
		text = strings.TrimRight(string(data), "\n")
	}

	layout := textlayout.Default
	if wide {
		layout = textlayout.Wide
	}

	out := cmd.OutOrStdout()
	for _, paragraph := range strings.Split(text, "\n") {
		lines, err := layout.Lines(paragraph, width)
		if err != nil {
			utils.PrintError(err)
			return err
		}
		for line := range lines {
			if number {
				_, err = fmt.Fprintf(out, "%3d | %s\n", layout.StringWidth(line), line)
			} else {
				_, err = fmt.Fprintln(out, line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
