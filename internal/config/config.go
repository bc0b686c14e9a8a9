package config

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// Version is set at build time.
var Version = "dev"

const (
	ConfigFileName = ".nescli.conf"
	DataDirName    = ".nescli"
)

const (
	KeyUser      = "user"
	KeyEmail     = "email"
	KeyAddHeader = "add_header"
	KeyTemplates = "templates"
	// KeyQRPrefix prefixes keys cached by `qr set`.
	KeyQRPrefix = "qr."
)

// DefaultPath returns ~/.nescli.conf.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ConfigFileName), nil
}

// TemplatesDir returns the template folder that sits beside the store file.
func TemplatesDir(storePath string) string {
	return filepath.Join(filepath.Dir(storePath), DataDirName, "templates")
}

func defaults() map[string]any {
	return map[string]any{
		KeyUser:      "undefined",
		KeyEmail:     "undefined",
		KeyAddHeader: true,
	}
}
