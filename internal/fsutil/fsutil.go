// Package fsutil creates files and folders and reports every outcome to a
// message box.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nescli/nescli/internal/msgbox"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrExists   = errors.New("already exists")
	ErrNotFound = errors.New("not found")
)

// Helper creates files and folders. Missing parent directories are only
// created after the prompter agrees.
type Helper struct {
	Box      *msgbox.Box
	Prompter utils.Prompter
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateFolder creates path. An existing folder is reported, not an error.
func (h Helper) CreateFolder(path string) error {
	err := os.Mkdir(path, 0o755)
	switch {
	case err == nil:
		h.Box.Push(msgbox.Create, fmt.Sprintf("> Create folder %q.", path))
		return nil
	case errors.Is(err, os.ErrExist):
		h.Box.Push(msgbox.Exists, fmt.Sprintf("> Target folder %q is already exists.", path))
		return nil
	case errors.Is(err, os.ErrNotExist):
		ok, perr := h.confirm(fmt.Sprintf("Parent folder for %q does not exist. Create the path to it?", filepath.Base(path)))
		if perr != nil {
			return perr
		}
		if !ok {
			h.Box.Push(msgbox.Info, fmt.Sprintf("> Cancel creating %q.", path))
			return nil
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", path)
		}
		h.Box.Push(msgbox.Create, fmt.Sprintf("> Create path to %q.", path))
		return nil
	default:
		return errors.Wrapf(err, "failed to create folder %s", path)
	}
}

// CreateFile writes header to a new file at path. An existing file is left
// untouched and reported.
func (h Helper) CreateFile(path string, header []string) error {
	if Exists(path) {
		h.Box.Push(msgbox.Exists, fmt.Sprintf("> File %q is already exists.", path))
		return nil
	}

	dir := filepath.Dir(path)
	if !Exists(dir) {
		ok, err := h.confirm(fmt.Sprintf("%q does not exist. Would you like to create it?", dir))
		if err != nil {
			return err
		}
		if !ok {
			h.Box.Push(msgbox.Info, fmt.Sprintf("> Cancel creating %q.", path))
			return nil
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
		h.Box.Push(msgbox.Create, fmt.Sprintf("> Create path %q.", dir))
	}

	if err := os.WriteFile(path, []byte(strings.Join(header, "")), 0o644); err != nil {
		return errors.Wrapf(err, "failed to create file %s", path)
	}
	log.Debug().Str("path", path).Int("headerLines", len(header)).Msg("file created")
	h.Box.Push(msgbox.Create, fmt.Sprintf("> Create file: %s.", path))
	return nil
}

func (h Helper) confirm(question string) (bool, error) {
	if h.Prompter == nil {
		return false, nil
	}
	return h.Prompter.Confirm(question, true)
}

// Copy copies src to dst, replacing dst. With safe set it refuses to replace
// an existing dst.
func Copy(src, dst string, safe bool) error {
	if safe && Exists(dst) {
		return errors.Wrapf(ErrExists, "%s", dst)
	}

	in, err := os.Open(src)
	if errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(ErrNotFound, "%s", src)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	return errors.Wrapf(out.Close(), "failed to close %s", dst)
}

// FindTestsDirectory walks up from start looking for a "tests" directory.
func FindTestsDirectory(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if dir == filepath.Dir(dir) {
			return "", false
		}
		candidate := filepath.Join(dir, "tests")
		if IsDir(candidate) {
			return candidate, true
		}
		dir = filepath.Dir(dir)
	}
}
