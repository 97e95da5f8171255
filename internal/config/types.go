// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// LogLevelDebug logs everything, including binding resolution.
	// Defined locally to avoid coupling config to the logging package;
	// the script runner casts at the boundary.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// LogFormatText renders human-readable styled log lines.
	LogFormatText LogFormat = "text"
	// LogFormatJSON renders one JSON object per log line.
	LogFormatJSON LogFormat = "json"

	// ThemeDefault uses quill's own prompt palette.
	// Defined locally to avoid coupling config to the ui package;
	// the script runner casts at the boundary.
	ThemeDefault ThemeName = "default"
	// ThemeCharm uses the charm prompt theme.
	ThemeCharm ThemeName = "charm"
	// ThemeDracula uses the dracula prompt theme.
	ThemeDracula ThemeName = "dracula"
	// ThemeCatppuccin uses the catppuccin prompt theme.
	ThemeCatppuccin ThemeName = "catppuccin"
	// ThemeBase16 uses the base16 prompt theme.
	ThemeBase16 ThemeName = "base16"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned when a LogFormat value is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidThemeName is returned when a ThemeName value is not recognized.
	ErrInvalidThemeName = errors.New("invalid theme name")
	// ErrInvalidPluginName is the sentinel error wrapped by InvalidPluginNameError.
	ErrInvalidPluginName = errors.New("invalid plugin name")
	// ErrInvalidLogConfig is the sentinel error wrapped by InvalidLogConfigError.
	ErrInvalidLogConfig = errors.New("invalid log config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidPluginsConfig is the sentinel error wrapped by InvalidPluginsConfigError.
	ErrInvalidPluginsConfig = errors.New("invalid plugins config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel selects the minimum severity the shared logger emits.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// LogFormat selects the shared logger's output encoding.
	LogFormat string

	// InvalidLogFormatError is returned when a LogFormat value is not recognized.
	// It wraps ErrInvalidLogFormat for errors.Is() compatibility.
	InvalidLogFormatError struct {
		Value LogFormat
	}

	// ThemeName selects the prompt and output styling theme.
	ThemeName string

	// InvalidThemeNameError is returned when a ThemeName value is not recognized.
	// It wraps ErrInvalidThemeName for errors.Is() compatibility.
	InvalidThemeNameError struct {
		Value ThemeName
	}

	// PluginName identifies a registered plugin. A valid name must be
	// non-empty and not whitespace-only.
	PluginName string

	// InvalidPluginNameError is returned when a PluginName value is
	// empty or whitespace-only. It wraps ErrInvalidPluginName for errors.Is().
	InvalidPluginNameError struct {
		Value PluginName
	}

	// InvalidLogConfigError is returned when a LogConfig has invalid fields.
	// It wraps ErrInvalidLogConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidLogConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidPluginsConfigError is returned when a PluginsConfig has invalid fields.
	// It wraps ErrInvalidPluginsConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidPluginsConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the quill configuration.
	Config struct {
		// Verbose forces debug-level logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Log configures the structured logger
		Log LogConfig `json:"log" mapstructure:"log"`
		// UI configures output styling and prompts
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Plugins selects the plugins applied by default
		Plugins PluginsConfig `json:"plugins" mapstructure:"plugins"`
	}

	// LogConfig configures the structured logger.
	LogConfig struct {
		// Level sets the minimum severity to emit
		Level LogLevel `json:"level" mapstructure:"level"`
		// Format selects text or json log lines
		Format LogFormat `json:"format" mapstructure:"format"`
	}

	// UIConfig configures output styling and prompts.
	UIConfig struct {
		// Theme sets the prompt styling theme
		Theme ThemeName `json:"theme" mapstructure:"theme"`
		// Accessible forces static prompts for screen readers
		Accessible bool `json:"accessible" mapstructure:"accessible"`
		// Color allows colored output; false disables it even on a TTY
		Color bool `json:"color" mapstructure:"color"`
	}

	// PluginsConfig selects which registered plugins apply by default.
	PluginsConfig struct {
		// Enabled lists the plugin names to apply; empty means all registered
		Enabled []PluginName `json:"enabled" mapstructure:"enabled"`
	}
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels,
// and a list of validation errors if it is not. The zero value is valid
// and treated as info.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, "":
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error {
	return ErrInvalidLogLevel
}

// String returns the string representation of the LogFormat.
func (f LogFormat) String() string { return string(f) }

// IsValid returns whether the LogFormat is one of the defined formats,
// and a list of validation errors if it is not. The zero value is valid
// and treated as text.
func (f LogFormat) IsValid() (bool, []error) {
	switch f {
	case LogFormatText, LogFormatJSON, "":
		return true, nil
	default:
		return false, []error{&InvalidLogFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidLogFormatError.
func (e *InvalidLogFormatError) Error() string {
	return fmt.Sprintf("invalid log format %q (valid: text, json)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogFormatError) Unwrap() error {
	return ErrInvalidLogFormat
}

// String returns the string representation of the ThemeName.
func (n ThemeName) String() string { return string(n) }

// IsValid returns whether the ThemeName is one of the defined themes,
// and a list of validation errors if it is not. The zero value is valid
// and treated as default.
func (n ThemeName) IsValid() (bool, []error) {
	switch n {
	case ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16, "":
		return true, nil
	default:
		return false, []error{&InvalidThemeNameError{Value: n}}
	}
}

// Error implements the error interface for InvalidThemeNameError.
func (e *InvalidThemeNameError) Error() string {
	return fmt.Sprintf("invalid theme name %q (valid: default, charm, dracula, catppuccin, base16)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidThemeNameError) Unwrap() error {
	return ErrInvalidThemeName
}

// String returns the string representation of the PluginName.
func (n PluginName) String() string { return string(n) }

// IsValid returns whether the PluginName is valid.
// A valid name must be non-empty and not whitespace-only.
func (n PluginName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidPluginNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPluginNameError.
func (e *InvalidPluginNameError) Error() string {
	return fmt.Sprintf("invalid plugin name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidPluginName for errors.Is() compatibility.
func (e *InvalidPluginNameError) Unwrap() error { return ErrInvalidPluginName }

// IsValid returns whether the LogConfig has valid fields.
// It delegates to Level.IsValid() and Format.IsValid().
func (c LogConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidLogConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidLogConfigError.
func (e *InvalidLogConfigError) Error() string {
	return fmt.Sprintf("invalid log config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidLogConfig for errors.Is() compatibility.
func (e *InvalidLogConfigError) Unwrap() error { return ErrInvalidLogConfig }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to Theme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Theme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the PluginsConfig has valid fields.
// It delegates to each entry's IsValid().
func (c PluginsConfig) IsValid() (bool, []error) {
	var errs []error
	for _, name := range c.Enabled {
		if valid, fieldErrs := name.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidPluginsConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPluginsConfigError.
func (e *InvalidPluginsConfigError) Error() string {
	return fmt.Sprintf("invalid plugins config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidPluginsConfig for errors.Is() compatibility.
func (e *InvalidPluginsConfigError) Unwrap() error { return ErrInvalidPluginsConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Log.IsValid(), UI.IsValid() and Plugins.IsValid().
// Verbose is a bool and needs no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Log.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Plugins.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Verbose: false,
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
		UI: UIConfig{
			Theme:      ThemeDefault,
			Accessible: false,
			Color:      true,
		},
		Plugins: PluginsConfig{
			Enabled: []PluginName{},
		},
	}
}
