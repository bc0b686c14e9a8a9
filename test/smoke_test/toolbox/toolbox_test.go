package toolbox

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nescli/nescli/test/testutils"
	"github.com/stretchr/testify/require"
)

func Test_python_project(t *testing.T) {
	testutils.SmokeTest(t)

	ctx := context.TODO()
	require := require.New(t)
	defer testutils.Cleanup()
	dir, configPath := testutils.Workspace(t)

	// PASS: set the author
	_, err := testutils.Execute(ctx, "pkg", "--config", configPath, "-u", "smoke", "-m", "smoke@example.com")
	require.NoError(err)

	// PASS: lay out a project
	_, err = testutils.Execute(ctx, "pkg", "--config", configPath, "-s", "--yes")
	require.NoError(err)
	require.FileExists(filepath.Join(dir, "tests", "__init__.py"))

	// PASS: nested package and modules
	_, err = testutils.Execute(ctx, "pkg", "--config", configPath, "-p", "./core/api")
	require.NoError(err)
	_, err = testutils.Execute(ctx, "file", "py", "--config", configPath, "main", "util")
	require.NoError(err)
	_, err = testutils.Execute(ctx, "file", "py", "--config", configPath, "-t", "main")
	require.NoError(err)
	require.FileExists(filepath.Join(dir, "tests", "test_main.py"))

	data, err := os.ReadFile(filepath.Join(dir, "main.py"))
	require.NoError(err)
	require.Contains(string(data), "smoke@example.com")

	// PASS: print the tree
	out, err := testutils.Execute(ctx, "tree", "-d", "0")
	require.NoError(err)
	require.Contains(out, "api")
	require.Contains(out, "test_main.py")
}

func Test_templates(t *testing.T) {
	testutils.SmokeTest(t)

	ctx := context.TODO()
	require := require.New(t)
	defer testutils.Cleanup()
	dir, configPath := testutils.Workspace(t)

	src := filepath.Join(dir, ".editorconfig")
	require.NoError(os.WriteFile(src, []byte("root = true\n"), 0o600))

	// PASS: save and list
	_, err := testutils.Execute(ctx, "conf", "set", "editor", src, "--config", configPath)
	require.NoError(err)
	out, err := testutils.Execute(ctx, "conf", "list", "--config", configPath, "--output", "json")
	require.NoError(err)
	var list []map[string]any
	require.NoError(json.Unmarshal([]byte(out), &list))
	require.Len(list, 1)

	// PASS: copy into a project
	project := filepath.Join(dir, "project")
	require.NoError(os.Mkdir(project, 0o755))
	_, err = testutils.Execute(ctx, "conf", "use", "editor", project, "--config", configPath)
	require.NoError(err)
	require.FileExists(filepath.Join(project, ".editorconfig"))

	// FAIL: unknown template
	_, err = testutils.Execute(ctx, "conf", "use", "missing", "--config", configPath)
	require.Error(err)
}

func Test_text_layout(t *testing.T) {
	testutils.SmokeTest(t)

	ctx := context.TODO()
	require := require.New(t)
	defer testutils.Cleanup()
	dir, _ := testutils.Workspace(t)

	csvPath := filepath.Join(dir, "people.csv")
	require.NoError(os.WriteFile(csvPath, []byte("name,age,weight\njack,18,120\n"), 0o600))

	// PASS: render a table
	out, err := testutils.Execute(ctx, "table", csvPath, "--max-width", "60")
	require.NoError(err)
	require.Contains(out, "│ jack │ 18  │ 120    │")

	// PASS: wrap text
	out, err = testutils.Execute(ctx, "wrap", "中文字符", "--width", "5")
	require.NoError(err)
	require.Equal("中文\n字符\n", out)

	// FAIL: invalid width
	_, err = testutils.Execute(ctx, "wrap", "text", "--width", "0")
	require.Error(err)
}
