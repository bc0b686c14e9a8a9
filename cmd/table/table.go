package table

import (
	"encoding/csv"
	"io"
	"os"
	"unicode/utf8"

	"github.com/nescli/nescli/cmd/common"
	"github.com/nescli/nescli/internal/boxtable"
	"github.com/nescli/nescli/internal/textlayout"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	ErrInvalidDelimiter = errors.New("delimiter must be a single character")
	ErrUnknownStyle     = errors.New("unknown border style")
)

const tableExample = `# Render a CSV file, wrapping cells to fit the terminal
nes table users.csv

# Render tab separated data from stdin in double lines
cut -f1,3 data.tsv | nes table --delimiter '\t' --style double`

var Cmd = &cobra.Command{
	Use:   "table [FILE]",
	Short: "Render CSV data as a box table",
	Long: `This command renders CSV records from FILE, or stdin, as a box table.
Columns are narrowed to fit --max-width, the terminal width by default, and long cells are wrapped.`,
	Example:      tableExample,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runTable,
	SilenceUsage: true,
}

func init() {
	Cmd.Flags().Bool("no-header", false, "Do not treat the first record as a header")
	Cmd.Flags().IntP("max-width", "w", 0, "Maximum table width, the terminal width by default")
	Cmd.Flags().StringP("style", "s", "single", "Border style (single|double|rounded)")
	Cmd.Flags().Bool("wide", false, "Measure all East Asian wide characters as two columns")
	Cmd.Flags().StringP("delimiter", "d", ",", `Field delimiter, "\t" for tabs`)
}

func runTable(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	delimiter, err := parseDelimiter(cmd)
	if err != nil {
		utils.PrintError(err)
		return err
	}

	in := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			err = errors.Wrapf(err, "failed to open %s", args[0])
			utils.PrintError(err)
			return err
		}
		defer f.Close()
		in = f
	}

	rows, err := readRecords(in, delimiter)
	if err != nil {
		utils.PrintError(err)
		return err
	}
	if err := boxtable.Fprint(cmd.OutOrStdout(), rows, opts); err != nil {
		utils.PrintError(err)
		return err
	}
	return nil
}

func optionsFromFlags(cmd *cobra.Command) (boxtable.Options, error) {
	noHeader, _ := cmd.Flags().GetBool("no-header")
	maxWidth, _ := cmd.Flags().GetInt("max-width")
	style, _ := cmd.Flags().GetString("style")
	wide, _ := cmd.Flags().GetBool("wide")

	charset, ok := boxtable.CharsetByName(style)
	if !ok {
		return boxtable.Options{}, errors.Wrapf(ErrUnknownStyle, "%q (expected single, double or rounded)", style)
	}
	if maxWidth <= 0 {
		maxWidth = common.TerminalWidth(cmd.OutOrStdout(), boxtable.DefaultMaxWidth)
	}

	opts := boxtable.Options{
		Header:   !noHeader,
		MaxWidth: maxWidth,
		Charset:  charset,
	}
	if wide {
		opts.Layout = textlayout.Wide
	}
	return opts, nil
}

func parseDelimiter(cmd *cobra.Command) (rune, error) {
	value, _ := cmd.Flags().GetString("delimiter")
	if value == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || size != len(value) {
		return 0, errors.Wrapf(ErrInvalidDelimiter, "got %q", value)
	}
	return r, nil
}

func readRecords(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	// ragged records are reported by the renderer
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	return rows, errors.Wrap(err, "failed to read csv")
}
