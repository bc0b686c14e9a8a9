package pypkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nescli/nescli/internal/fsutil"
	"github.com/nescli/nescli/internal/headers"
	"github.com/nescli/nescli/internal/msgbox"
	"github.com/nescli/nescli/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreator() Creator {
	return Creator{
		Files:  fsutil.Helper{Box: msgbox.New(), Prompter: utils.Always(true)},
		Header: headers.Static{"# header\n"},
	}
}

func TestParsePackageName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"some", "package", "name"} {
		dir, pkg, target, err := ParsePackage(name, false, "/work")
		require.NoError(t, err)
		assert.Equal(t, "/work", dir)
		assert.Equal(t, name, pkg)
		assert.Equal(t, filepath.Join("/work", name), target)
	}
}

func TestParsePackagePath(t *testing.T) {
	t.Parallel()

	dir, pkg, target, err := ParsePackage("./project/core", true, "/work")
	require.NoError(t, err)
	assert.Equal(t, "/work/project", dir)
	assert.Equal(t, "core", pkg)
	assert.Equal(t, "/work/project/core", target)

	dir, pkg, _, err = ParsePackage("/abs/pkg/", true, "/work")
	require.NoError(t, err)
	assert.Equal(t, "/abs", dir)
	assert.Equal(t, "pkg", pkg)
}

func TestParsePackageRejectsSlashWithoutPathFlag(t *testing.T) {
	t.Parallel()

	_, _, _, err := ParsePackage("aa/bb", false, "/work")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, _, _, err = ParsePackage("", false, "/work")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestCreatePackages(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	c := newCreator()

	result, err := c.Create([]string{"a", "b"}, false, cwd)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 2}, result)

	for _, name := range []string{"a", "b"} {
		data, err := os.ReadFile(filepath.Join(cwd, name, InitFile))
		require.NoError(t, err)
		assert.Equal(t, "# header\n", string(data))
	}
}

func TestCreateNestedPackagesWithPath(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	c := newCreator()

	result, err := c.Create([]string{"aa/aa", "bb/bb/bb"}, true, cwd)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	for _, dir := range []string{"aa", "aa/aa", "bb", "bb/bb", "bb/bb/bb"} {
		assert.True(t, IsPackage(filepath.Join(cwd, dir)), dir)
	}
}

func TestCreateConvertsAndReportsExisting(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	c := newCreator()

	require.NoError(t, os.Mkdir(filepath.Join(cwd, "plain"), 0o755))
	_, err := c.Create([]string{"pkg"}, false, cwd)
	require.NoError(t, err)

	result, err := c.Create([]string{"plain", "pkg"}, false, cwd)
	require.NoError(t, err)
	assert.Equal(t, Result{Converted: 1, Existing: 1}, result)
	assert.True(t, IsPackage(filepath.Join(cwd, "plain")))
	assert.Equal(t, "Done! 0 packages created. 1 directories turned into package. 1 package is already exists.", result.String())
}

func TestSetupProject(t *testing.T) {
	t.Parallel()
	cwd := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.Mkdir(cwd, 0o755))
	c := newCreator()

	require.NoError(t, c.SetupProject(cwd))
	assert.True(t, IsPackage(filepath.Join(cwd, "demo")))
	assert.True(t, IsPackage(filepath.Join(cwd, "tests")))
	assert.FileExists(t, filepath.Join(cwd, "app.py"))
}

func TestCreateModules(t *testing.T) {
	t.Parallel()
	cwd := t.TempDir()
	c := newCreator()

	require.NoError(t, c.CreateModules([]string{"app", "demo.py"}, cwd))
	assert.FileExists(t, filepath.Join(cwd, "app.py"))
	assert.FileExists(t, filepath.Join(cwd, "demo.py"))
	assert.NoFileExists(t, filepath.Join(cwd, "demo.py.py"))
}

func TestCreateTestModules(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tests"), 0o755))
	cwd := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(cwd, 0o755))
	c := newCreator()

	require.NoError(t, c.CreateTestModules([]string{"demo", "core/app"}, cwd))

	data, err := os.ReadFile(filepath.Join(root, "tests", "test_demo.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "import pytest")
	assert.FileExists(t, filepath.Join(root, "tests", "core", "test_app.py"))
}

func TestCreateTestModulesWithoutTestsDirectory(t *testing.T) {
	t.Parallel()
	c := newCreator()

	err := c.CreateTestModules([]string{"demo"}, "/aaa/bbb")
	assert.ErrorIs(t, err, ErrNoTestsDirectory)
}
