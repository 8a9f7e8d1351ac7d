package projectconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	rerr "github.com/alexanderramin/hoursreport/internal/errors"
)

// Registry is an immutable lookup table of project configurations, built
// once at startup and passed into the pipeline.
type Registry struct {
	byKey map[string]ProjectConfig
	keys  []string
}

// NewRegistry validates every configuration and indexes it by lower-cased
// key. Keys keep registration order.
func NewRegistry(configs ...ProjectConfig) (*Registry, error) {
	r := &Registry{byKey: make(map[string]ProjectConfig, len(configs))}
	for _, c := range configs {
		if d, ok := c.(*Definition); ok {
			if errs := Validate(d); len(errs) > 0 {
				return nil, validationError(d.Key(), errs)
			}
		}
		key := strings.ToLower(c.Key())
		if key == "" {
			return nil, rerr.Configf("project config %q has no key", c.DisplayName())
		}
		if _, dup := r.byKey[key]; dup {
			return nil, rerr.Configf("duplicate project config key %q", key)
		}
		r.byKey[key] = c
		r.keys = append(r.keys, key)
	}
	return r, nil
}

// Get returns the configuration registered under key.
func (r *Registry) Get(key string) (ProjectConfig, bool) {
	c, ok := r.byKey[strings.ToLower(key)]
	return c, ok
}

// MustGet is Get that returns a config error for unknown keys.
func (r *Registry) MustGet(key string) (ProjectConfig, error) {
	c, ok := r.Get(key)
	if !ok {
		return nil, rerr.WithField(
			rerr.Configf("unknown project config %q (available: %s)", key, strings.Join(r.keys, ", ")),
			"config")
	}
	return c, nil
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// List returns the configurations in registration order.
func (r *Registry) List() []ProjectConfig {
	out := make([]ProjectConfig, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}

// LoadDir loads every *.json project configuration in dir, sorted by file
// name. A missing directory yields no configurations.
func LoadDir(dir string) ([]*Definition, error) {
	if dir == "" {
		return nil, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, rerr.Wrapf(err, rerr.KindConfig, "listing project configs in %s", dir)
	}
	if len(matches) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil && !os.IsNotExist(statErr) {
			return nil, rerr.Wrapf(statErr, rerr.KindConfig, "reading project config dir %s", dir)
		}
		return nil, nil
	}
	sort.Strings(matches)

	defs := make([]*Definition, 0, len(matches))
	for _, path := range matches {
		d, err := Load(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// DefaultRegistry builds a registry holding the built-ins followed by the
// configurations found in dir.
func DefaultRegistry(dir string) (*Registry, error) {
	loaded, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	configs := make([]ProjectConfig, 0, 2+len(loaded))
	for _, d := range Builtins() {
		configs = append(configs, d)
	}
	for _, d := range loaded {
		configs = append(configs, d)
	}
	return NewRegistry(configs...)
}

func validationError(name string, errs []error) error {
	return rerr.List(rerr.KindConfig, fmt.Sprintf("project config %s is invalid", name), errs)
}
