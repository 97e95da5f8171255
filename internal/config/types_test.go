// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Verbose {
		t.Error("expected default verbose to be false")
	}

	if cfg.Log.Level != LogLevelInfo {
		t.Errorf("expected default log level to be info, got %s", cfg.Log.Level)
	}

	if cfg.Log.Format != LogFormatText {
		t.Errorf("expected default log format to be text, got %s", cfg.Log.Format)
	}

	if cfg.UI.Theme != ThemeDefault {
		t.Errorf("expected default theme to be default, got %s", cfg.UI.Theme)
	}

	if cfg.UI.Accessible {
		t.Error("expected default accessible to be false")
	}

	if !cfg.UI.Color {
		t.Error("expected color to be enabled by default")
	}

	if len(cfg.Plugins.Enabled) != 0 {
		t.Errorf("expected default enabled plugins to be empty, got %v", cfg.Plugins.Enabled)
	}

	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("expected default config to be valid, got %v", errs)
	}
}

func TestLogLevel_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level LogLevel
		want  bool
	}{
		{LogLevelDebug, true},
		{LogLevelInfo, true},
		{LogLevelWarn, true},
		{LogLevelError, true},
		{LogLevel(""), true},
		{LogLevel("verbose"), false},
		{LogLevel("INFO"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.level.IsValid()
			if valid != tt.want {
				t.Errorf("LogLevel(%q).IsValid() = %v, want %v", tt.level, valid, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("expected 1 validation error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidLogLevel) {
					t.Errorf("expected error to wrap ErrInvalidLogLevel, got %v", errs[0])
				}
				var invalidErr *InvalidLogLevelError
				if !errors.As(errs[0], &invalidErr) {
					t.Fatalf("expected *InvalidLogLevelError, got %T", errs[0])
				}
				if invalidErr.Value != tt.level {
					t.Errorf("error value = %q, want %q", invalidErr.Value, tt.level)
				}
			}
		})
	}
}

func TestLogFormat_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format LogFormat
		want   bool
	}{
		{LogFormatText, true},
		{LogFormatJSON, true},
		{LogFormat(""), true},
		{LogFormat("yaml"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.format.IsValid()
			if valid != tt.want {
				t.Errorf("LogFormat(%q).IsValid() = %v, want %v", tt.format, valid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidLogFormat) {
				t.Errorf("expected error to wrap ErrInvalidLogFormat, got %v", errs[0])
			}
		})
	}
}

func TestThemeName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme ThemeName
		want  bool
	}{
		{ThemeDefault, true},
		{ThemeCharm, true},
		{ThemeDracula, true},
		{ThemeCatppuccin, true},
		{ThemeBase16, true},
		{ThemeName(""), true},
		{ThemeName("solarized"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.theme.IsValid()
			if valid != tt.want {
				t.Errorf("ThemeName(%q).IsValid() = %v, want %v", tt.theme, valid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidThemeName) {
				t.Errorf("expected error to wrap ErrInvalidThemeName, got %v", errs[0])
			}
		})
	}
}

func TestPluginName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value PluginName
		want  bool
	}{
		{"simple name", PluginName("conf"), true},
		{"with hyphen", PluginName("shell-run"), true},
		{"empty", PluginName(""), false},
		{"whitespace only", PluginName("   "), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Errorf("PluginName(%q).IsValid() = %v, want %v", tt.value, valid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidPluginName) {
				t.Errorf("expected error to wrap ErrInvalidPluginName, got %v", errs[0])
			}
		})
	}
}

func TestLogConfig_IsValid_CollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := LogConfig{Level: "loud", Format: "xml"}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("expected log config to be invalid")
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 wrapping error, got %d", len(errs))
	}

	var logErr *InvalidLogConfigError
	if !errors.As(errs[0], &logErr) {
		t.Fatalf("expected *InvalidLogConfigError, got %T", errs[0])
	}
	if len(logErr.FieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(logErr.FieldErrors))
	}
	if !errors.Is(errs[0], ErrInvalidLogConfig) {
		t.Error("expected error to wrap ErrInvalidLogConfig")
	}
}

func TestUIConfig_IsValid(t *testing.T) {
	t.Parallel()

	valid, _ := (UIConfig{Theme: ThemeCharm, Accessible: true, Color: false}).IsValid()
	if !valid {
		t.Error("expected UI config with known theme to be valid")
	}

	valid, errs := (UIConfig{Theme: "neon"}).IsValid()
	if valid {
		t.Fatal("expected UI config with unknown theme to be invalid")
	}
	if !errors.Is(errs[0], ErrInvalidUIConfig) {
		t.Error("expected error to wrap ErrInvalidUIConfig")
	}
}

func TestPluginsConfig_IsValid(t *testing.T) {
	t.Parallel()

	valid, _ := (PluginsConfig{Enabled: []PluginName{"conf", "shellrun"}}).IsValid()
	if !valid {
		t.Error("expected plugins config with named plugins to be valid")
	}

	valid, errs := (PluginsConfig{Enabled: []PluginName{"conf", ""}}).IsValid()
	if valid {
		t.Fatal("expected plugins config with empty name to be invalid")
	}

	var pluginsErr *InvalidPluginsConfigError
	if !errors.As(errs[0], &pluginsErr) {
		t.Fatalf("expected *InvalidPluginsConfigError, got %T", errs[0])
	}
	if len(pluginsErr.FieldErrors) != 1 {
		t.Errorf("expected 1 field error, got %d", len(pluginsErr.FieldErrors))
	}
}

func TestConfig_IsValid_AggregatesSubComponents(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Log:     LogConfig{Level: "loud"},
		UI:      UIConfig{Theme: "neon"},
		Plugins: PluginsConfig{Enabled: []PluginName{" "}},
	}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("expected config to be invalid")
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(cfgErr.FieldErrors))
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Error("expected error to wrap ErrInvalidConfig")
	}
}

func TestLevelAndFormatConstants(t *testing.T) {
	t.Parallel()

	if LogLevelDebug != "debug" || LogLevelInfo != "info" || LogLevelWarn != "warn" || LogLevelError != "error" {
		t.Error("log level constants changed; QUILL_LOG_LEVEL documentation depends on these values")
	}

	if LogFormatText != "text" || LogFormatJSON != "json" {
		t.Error("log format constants changed; QUILL_LOG_FORMAT documentation depends on these values")
	}
}
