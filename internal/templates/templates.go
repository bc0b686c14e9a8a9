// Package templates keeps copies of config files in a template folder and
// records them in the config store.
package templates

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/nescli/nescli/internal/config"
	"github.com/nescli/nescli/internal/fsutil"
	"github.com/nescli/nescli/internal/model"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidName      = errors.New("invalid template name")
)

type Manager struct {
	Dir   string
	Store *config.Store
	Now   func() time.Time
}

// NewManager keeps templates in the folder beside the store file.
func NewManager(store *config.Store) *Manager {
	return &Manager{
		Dir:   config.TemplatesDir(store.Path()),
		Store: store,
		Now:   time.Now,
	}
}

// EnsureDir creates the template folder if needed.
func (m *Manager) EnsureDir() error {
	if err := os.MkdirAll(m.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create template folder %s", m.Dir)
	}
	return nil
}

func (m *Manager) load() (map[string]model.Template, error) {
	records := map[string]model.Template{}
	if err := m.Store.GetInto(config.KeyTemplates, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (m *Manager) save(records map[string]model.Template) error {
	return m.Store.Set(config.KeyTemplates, records)
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return nil
}

// Set copies source into the template folder under name, replacing any
// template of the same name.
func (m *Manager) Set(name, source, description string) (model.Template, error) {
	if err := validateName(name); err != nil {
		return model.Template{}, err
	}
	records, err := m.load()
	if err != nil {
		return model.Template{}, err
	}

	tmpl := model.Template{
		Name:        name,
		Description: description,
		CreatedAt:   m.Now().UTC(),
	}
	if err := m.capture(&tmpl, source); err != nil {
		return model.Template{}, err
	}

	records[name] = tmpl
	if err := m.save(records); err != nil {
		return model.Template{}, err
	}
	log.Debug().Str("name", name).Str("source", tmpl.Source).Msg("template saved")
	return tmpl, nil
}

// capture copies source into the template folder and records its checksum.
func (m *Manager) capture(tmpl *model.Template, source string) error {
	abs, err := filepath.Abs(source)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", source)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return errors.Wrapf(err, "failed to read template source %s", abs)
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}

	file := filepath.Join(m.Dir, tmpl.Name)
	if err := fsutil.Copy(abs, file, false); err != nil {
		return err
	}
	tmpl.Source = abs
	tmpl.File = file
	tmpl.Checksum = utils.HashSha256(string(data))
	return nil
}

func (m *Manager) Get(name string) (model.Template, error) {
	records, err := m.load()
	if err != nil {
		return model.Template{}, err
	}
	tmpl, ok := records[name]
	if !ok {
		return model.Template{}, errors.Wrapf(ErrTemplateNotFound, "%q", name)
	}
	return tmpl, nil
}

// List returns every template sorted by name.
func (m *Manager) List() ([]model.Template, error) {
	records, err := m.load()
	if err != nil {
		return nil, err
	}
	list := make([]model.Template, 0, len(records))
	for _, tmpl := range records {
		list = append(list, tmpl)
	}
	slices.SortFunc(list, func(a, b model.Template) int { return strings.Compare(a.Name, b.Name) })
	return list, nil
}

// Remove deletes the template and its copy. It reports whether a template
// was removed; removing an unknown name is not an error.
func (m *Manager) Remove(name string) (bool, error) {
	records, err := m.load()
	if err != nil {
		return false, err
	}
	tmpl, ok := records[name]
	if !ok {
		return false, nil
	}
	delete(records, name)
	if err := m.save(records); err != nil {
		return false, err
	}
	if err := os.Remove(tmpl.File); err != nil && !errors.Is(err, os.ErrNotExist) {
		return true, errors.Wrapf(err, "failed to remove %s", tmpl.File)
	}
	return true, nil
}

// Update changes the description and, when source is not empty, captures
// the file again.
func (m *Manager) Update(name, description, source string) (model.Template, error) {
	records, err := m.load()
	if err != nil {
		return model.Template{}, err
	}
	tmpl, ok := records[name]
	if !ok {
		return model.Template{}, errors.Wrapf(ErrTemplateNotFound, "%q", name)
	}
	if description != "" {
		tmpl.Description = description
	}
	if source != "" {
		if err := m.capture(&tmpl, source); err != nil {
			return model.Template{}, err
		}
	}
	records[name] = tmpl
	return tmpl, m.save(records)
}

// Use copies the template to dest. A directory dest receives the file under
// the source's base name. Existing files are only replaced with force.
func (m *Manager) Use(name, dest string, force bool) (string, error) {
	tmpl, err := m.Get(name)
	if err != nil {
		return "", err
	}
	if fsutil.IsDir(dest) {
		dest = filepath.Join(dest, filepath.Base(tmpl.Source))
	}
	if err := fsutil.Copy(tmpl.File, dest, !force); err != nil {
		return "", err
	}
	return dest, nil
}

// Status reports whether the source file still matches the template.
func (m *Manager) Status(tmpl model.Template) model.TemplateStatus {
	data, err := os.ReadFile(tmpl.Source)
	if errors.Is(err, os.ErrNotExist) {
		return model.TemplateStatusSourceMissing
	}
	if err != nil {
		return model.TemplateStatusUnknown
	}
	if utils.HashSha256(string(data)) != tmpl.Checksum {
		return model.TemplateStatusDrifted
	}
	return model.TemplateStatusSynced
}
