// SPDX-License-Identifier: MPL-2.0

// Package conf gives scripts their own configuration file without any
// loading code. It registers the "conf" plugin, which binds a *Store under
// the "conf" name reading quill.toml, quill.yaml or quill.json from the
// working directory, with environment overrides prefixed by the script's
// name:
//
//	type in struct {
//		Conf *conf.Store
//	}
//
//	s.Main("", "", func(in in) error {
//		endpoint := in.Conf.String("endpoint")
//		...
//	})
//
// A script named "deploy" reads DEPLOY_ENDPOINT over the file's endpoint
// key.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// FileBase is the configuration file name without extension. Extensions
// are probed in a fixed order: toml, then yaml, then json.
const FileBase = "quill"

var extensions = []string{"toml", "yaml", "json"}

type (
	// Store holds a script's local configuration. The zero value is not
	// usable; call Open.
	Store struct {
		v    *viper.Viper
		path string
	}

	// Option configures Open.
	Option func(*options)

	options struct {
		dir    string
		prefix string
	}
)

// WithDir sets the directory searched for the configuration file. The
// default is the working directory.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithEnvPrefix sets the prefix for environment overrides. Empty disables
// them.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// EnvPrefix derives an environment prefix from a script name: letters and
// digits upper-cased, everything else collapsed to underscores, so
// "my-tool" becomes "MY_TOOL".
func EnvPrefix(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Open reads the script configuration. A missing file is not an error; the
// store then serves zero values and environment overrides only.
func Open(opts ...Option) (*Store, error) {
	o := options{dir: "."}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	if o.prefix != "" {
		v.SetEnvPrefix(o.prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
	}

	path := ""
	for _, ext := range extensions {
		candidate := filepath.Join(o.dir, FileBase+"."+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			path = candidate
			break
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read script configuration %s: %w", path, err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// Path returns the configuration file that was read, empty when none was
// found.
func (s *Store) Path() string {
	return s.path
}

// Has reports whether key holds a value. Nested keys use dots:
// "server.port".
func (s *Store) Has(key string) bool {
	return s.v.IsSet(key)
}

// String returns key as a string, empty when unset.
func (s *Store) String(key string) string {
	return s.v.GetString(key)
}

// Int returns key as an int, zero when unset.
func (s *Store) Int(key string) int {
	return s.v.GetInt(key)
}

// Bool returns key as a bool, false when unset.
func (s *Store) Bool(key string) bool {
	return s.v.GetBool(key)
}

// Float returns key as a float64, zero when unset.
func (s *Store) Float(key string) float64 {
	return s.v.GetFloat64(key)
}

// Duration returns key as a time.Duration, accepting both strings like
// "1500ms" and bare numbers of nanoseconds. Zero when unset.
func (s *Store) Duration(key string) time.Duration {
	return s.v.GetDuration(key)
}

// Strings returns key as a string slice, nil when unset.
func (s *Store) Strings(key string) []string {
	return s.v.GetStringSlice(key)
}

// Set stores value under key for this process. Set values take precedence
// over the file and the environment, and are included by Write.
func (s *Store) Set(key string, value any) {
	s.v.Set(key, value)
}

// All returns every setting as a nested map.
func (s *Store) All() map[string]any {
	return s.v.AllSettings()
}

// Write persists the current settings to path as TOML.
func (s *Store) Write(path string) error {
	if path == "" {
		return errors.New("write script configuration: path must not be empty")
	}
	data, err := toml.Marshal(s.v.AllSettings())
	if err != nil {
		return fmt.Errorf("encode script configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write script configuration: %w", err)
	}
	return nil
}
