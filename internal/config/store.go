package config

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a flat JSON key/value file. Every change is written back
// immediately.
type Store struct {
	path   string
	values map[string]any
}

// Open loads the store at path. A missing file yields the defaults.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", path).Msg("config file not found, using defaults")
		s.values = defaults()
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	values := map[string]any{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, errors.Wrapf(err, "config file %s is not a json object", path)
		}
	}
	// a file holding null decodes to a nil map
	if values == nil {
		values = map[string]any{}
	}
	s.values = values
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetString returns "" for missing or non-string values.
func (s *Store) GetString(key string) string {
	v, _ := s.values[key].(string)
	return v
}

// GetBool returns false for missing or non-bool values.
func (s *Store) GetBool(key string) bool {
	v, _ := s.values[key].(bool)
	return v
}

// GetInto decodes the value under key into v. A missing key leaves v as is.
func (s *Store) GetInto(key string, v any) error {
	raw, ok := s.values[key]
	if !ok {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %q", key)
	}
	return errors.Wrapf(json.Unmarshal(data, v), "failed to decode %q", key)
}

func (s *Store) Set(key string, value any) error {
	s.values[key] = value
	return s.write()
}

func (s *Store) Remove(key string) error {
	if _, ok := s.values[key]; !ok {
		return errors.Wrapf(ErrKeyNotFound, "%q", key)
	}
	delete(s.values, key)
	return s.write()
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

func (s *Store) write() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create config directory for %s", s.path)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", s.path)
	}
	log.Debug().Str("path", s.path).Int("keys", len(s.values)).Msg("config written")
	return nil
}
