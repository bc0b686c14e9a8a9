// Package headers generates the comment block written at the top of new
// source files.
package headers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/nescli/nescli/internal/config"
)

// Generator returns the header lines for the file at path. Each line ends
// with a newline.
type Generator interface {
	Generate(path string) []string
}

// PythonHeader produces the coding line, file, time and author block used
// for Python files.
type PythonHeader struct {
	Enabled bool
	User    string
	Email   string
	Now     func() time.Time
}

// NewPythonHeader reads the author fields and the header switch from store.
func NewPythonHeader(store *config.Store) PythonHeader {
	return PythonHeader{
		Enabled: store.GetBool(config.KeyAddHeader),
		User:    store.GetString(config.KeyUser),
		Email:   store.GetString(config.KeyEmail),
		Now:     time.Now,
	}
}

func (h PythonHeader) Generate(path string) []string {
	if !h.Enabled {
		return nil
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	name := filepath.Base(filepath.Dir(path)) + "/" + filepath.Base(path)
	lines := []string{
		"# -*- coding: utf-8 -*-\n",
		fmt.Sprintf("# @File    :   %s\n", name),
		fmt.Sprintf("# @Time    :   %s\n", now().Format(time.DateTime)),
	}
	if h.User != "" {
		lines = append(lines, fmt.Sprintf("# @Author  :   %s\n", h.User))
	}
	if h.Email != "" {
		lines = append(lines, fmt.Sprintf("# @Email   :   %s\n", h.Email))
	}
	return append(lines, "\n\"\"\" docstring \"\"\"\n")
}

// Static always returns the same lines.
type Static []string

func (s Static) Generate(string) []string {
	return s
}

// PythonTest is the header of generated test modules.
var PythonTest = Static{
	"try:\n",
	"\timport pytest\n",
	"except ImportError:\n",
	"\timport unittest\n",
}
