// Package pypkg scaffolds Python packages, modules and test modules.
package pypkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nescli/nescli/internal/fsutil"
	"github.com/nescli/nescli/internal/headers"
	"github.com/nescli/nescli/internal/msgbox"
	"github.com/pkg/errors"
)

const InitFile = "__init__.py"

var (
	ErrInvalidName      = errors.New("invalid package name")
	ErrNoTestsDirectory = errors.New("no tests directory found")
)

// Creator creates packages and modules under a working directory.
type Creator struct {
	Files  fsutil.Helper
	Header headers.Generator
}

func (c Creator) box() *msgbox.Box {
	return c.Files.Box
}

// Result counts what Create did.
type Result struct {
	Created   int
	Converted int
	Existing  int
}

func (r Result) String() string {
	msg := fmt.Sprintf("Done! %d packages created.", r.Created)
	if r.Converted > 0 {
		msg += fmt.Sprintf(" %d directories turned into package.", r.Converted)
	}
	if r.Existing > 0 {
		msg += fmt.Sprintf(" %d package is already exists.", r.Existing)
	}
	return msg
}

// ParsePackage splits name into the parent directory, the package name and
// the package path. Without isPath the name must not contain a separator.
func ParsePackage(name string, isPath bool, cwd string) (dir, pkg, target string, err error) {
	name = strings.TrimRight(name, "/")
	if name == "" {
		return "", "", "", errors.Wrap(ErrInvalidName, "empty name")
	}

	if isPath {
		if !filepath.IsAbs(name) {
			name = filepath.Join(cwd, name)
		}
		dir, pkg = filepath.Dir(name), filepath.Base(name)
	} else {
		if strings.Contains(name, "/") {
			return "", "", "", errors.Wrapf(ErrInvalidName,
				"%q: package name can not contain `/`, use option `-p` to create packages with full path", name)
		}
		dir, pkg = cwd, name
	}
	return dir, pkg, filepath.Join(dir, pkg), nil
}

// IsPackage reports whether dir holds an __init__.py.
func IsPackage(dir string) bool {
	return fsutil.Exists(filepath.Join(dir, InitFile))
}

// Create creates a package for every name, converting existing folders.
func (c Creator) Create(names []string, isPath bool, cwd string) (Result, error) {
	var result Result
	for _, name := range names {
		dir, pkg, target, err := ParsePackage(name, isPath, cwd)
		if err != nil {
			return result, err
		}

		switch {
		case IsPackage(target):
			c.box().Push(msgbox.Exists, fmt.Sprintf("> Package %q is already exists.", target))
			result.Existing++
		case fsutil.IsDir(target):
			if err := c.ConvertToPackage(target); err != nil {
				return result, err
			}
			result.Converted++
		default:
			if err := c.CreatePackages(dir, pkg); err != nil {
				return result, err
			}
			result.Created++
		}
	}
	return result, nil
}

// CreatePackages creates dir/pkg as a package, turning every missing parent
// into a package too.
func (c Creator) CreatePackages(dir, pkg string) error {
	if !fsutil.Exists(dir) {
		if err := c.CreatePackages(filepath.Dir(dir), filepath.Base(dir)); err != nil {
			return err
		}
	}

	c.box().Push(msgbox.Info, fmt.Sprintf("- NEW PACKAGE: %s", pkg))
	target := filepath.Join(dir, pkg)
	if err := c.Files.CreateFolder(target); err != nil {
		return err
	}
	if err := c.ConvertToPackage(target); err != nil {
		return err
	}
	c.box().Push(msgbox.Create, fmt.Sprintf("> New package %q is created.", pkg))
	return nil
}

// ConvertToPackage adds an __init__.py to dir when it has none.
func (c Creator) ConvertToPackage(dir string) error {
	if IsPackage(dir) {
		c.box().Push(msgbox.Exists, fmt.Sprintf("> Package %q is already exists.", dir))
		return nil
	}
	initFile := filepath.Join(dir, InitFile)
	if err := c.Files.CreateFile(initFile, c.Header.Generate(initFile)); err != nil {
		return err
	}
	c.box().Push(msgbox.Update, fmt.Sprintf("> Directory %q is converted to package.", dir))
	return nil
}

// SetupProject lays out <cwd>/<project>, <cwd>/tests and <cwd>/app.py where
// project is the name of cwd.
func (c Creator) SetupProject(cwd string) error {
	project := filepath.Base(cwd)
	if err := c.CreatePackages(cwd, project); err != nil {
		return err
	}
	if err := c.CreatePackages(cwd, "tests"); err != nil {
		return err
	}
	app := filepath.Join(cwd, "app.py")
	return c.Files.CreateFile(app, c.Header.Generate(app))
}

// CreateModules creates <cwd>/<name>.py for every name.
func (c Creator) CreateModules(names []string, cwd string) error {
	for _, name := range names {
		path := filepath.Join(cwd, strings.TrimSuffix(name, ".py")+".py")
		if err := c.Files.CreateFile(path, c.Header.Generate(path)); err != nil {
			return err
		}
	}
	return nil
}

// CreateTestModules creates test_<name>.py files inside the nearest tests
// directory above cwd. A name may contain sub folders.
func (c Creator) CreateTestModules(names []string, cwd string) error {
	tests, ok := fsutil.FindTestsDirectory(cwd)
	if !ok {
		return errors.Wrapf(ErrNoTestsDirectory, "searched from %s", cwd)
	}

	for _, name := range names {
		full := filepath.Join(tests, strings.TrimSuffix(name, ".py"))
		path := filepath.Join(filepath.Dir(full), "test_"+filepath.Base(full)+".py")
		if err := c.Files.CreateFile(path, headers.PythonTest.Generate(path)); err != nil {
			return err
		}
	}
	return nil
}

// Cwd returns the working directory.
func Cwd() (string, error) {
	cwd, err := os.Getwd()
	return cwd, errors.Wrap(err, "failed to get working directory")
}
