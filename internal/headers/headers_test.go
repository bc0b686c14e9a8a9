package headers

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nescli/nescli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 2, 21, 17, 29, 48, 0, time.UTC)
}

func TestPythonHeader(t *testing.T) {
	t.Parallel()

	h := PythonHeader{Enabled: true, User: "root", Email: "test@example.com", Now: fixedNow}
	lines := h.Generate("/work/project/core/app.py")

	assert.Equal(t, []string{
		"# -*- coding: utf-8 -*-\n",
		"# @File    :   core/app.py\n",
		"# @Time    :   2024-02-21 17:29:48\n",
		"# @Author  :   root\n",
		"# @Email   :   test@example.com\n",
		"\n\"\"\" docstring \"\"\"\n",
	}, lines)
}

func TestPythonHeaderDisabled(t *testing.T) {
	t.Parallel()

	assert.Empty(t, PythonHeader{User: "root"}.Generate("/a/b.py"))
}

func TestPythonHeaderWithoutAuthor(t *testing.T) {
	t.Parallel()

	lines := PythonHeader{Enabled: true, Now: fixedNow}.Generate("/a/b.py")
	joined := strings.Join(lines, "")
	assert.NotContains(t, joined, "@Author")
	assert.NotContains(t, joined, "@Email")
}

func TestNewPythonHeaderFromStore(t *testing.T) {
	t.Parallel()

	store, err := config.Open(filepath.Join(t.TempDir(), config.ConfigFileName))
	require.NoError(t, err)
	require.NoError(t, store.Set(config.KeyUser, "root"))
	require.NoError(t, store.Set(config.KeyEmail, "test@example.com"))

	h := NewPythonHeader(store)
	joined := strings.Join(h.Generate("/a/b.py"), "")
	assert.Equal(t, 1, strings.Count(joined, "root"))
	assert.Equal(t, 1, strings.Count(joined, "test@example.com"))

	require.NoError(t, store.Set(config.KeyAddHeader, false))
	assert.Empty(t, NewPythonHeader(store).Generate("/a/b.py"))
}
