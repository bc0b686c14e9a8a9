package wrap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nescli/nescli/internal/textlayout"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	Cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	Cmd.SetIn(strings.NewReader(stdin))
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SilenceErrors = true
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return out.String(), err
}

func TestWrapCommand(t *testing.T) {
	require.Equal(t, "wrap [TEXT...]", Cmd.Use)
	require.Equal(t, "w", Cmd.Flags().Lookup("width").Shorthand)
	require.Equal(t, "80", Cmd.Flags().Lookup("width").DefValue)
	require.NotNil(t, Cmd.Flags().Lookup("wide"))
}

func TestWrapArguments(t *testing.T) {
	out, err := execute(t, "", "这是一段目标文字, this is a test text", "--width", "6")
	require.NoError(t, err)
	require.Equal(t, "这是一\n段目标\n文字, \nthis\nis a\ntest\ntext\n", out)
}

func TestWrapStdinKeepsParagraphs(t *testing.T) {
	out, err := execute(t, "some word is here\nab\n", "-w", "7")
	require.NoError(t, err)
	require.Equal(t, "some\nword is\n here\nab\n", out)
}

func TestWrapNumbered(t *testing.T) {
	out, err := execute(t, "", "中文字符", "-w", "5", "-n")
	require.NoError(t, err)
	require.Equal(t, "  4 | 中文\n  4 | 字符\n", out)
}

func TestWrapRejectsWidth(t *testing.T) {
	_, err := execute(t, "", "text", "-w", "0")
	require.ErrorIs(t, err, textlayout.ErrInvalidArgument)
}
