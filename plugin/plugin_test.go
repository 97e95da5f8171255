// SPDX-License-Identifier: MPL-2.0

package plugin_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/quill-sh/quill/container"
	"github.com/quill-sh/quill/plugin"
)

func noopSetup(*container.Container) error { return nil }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	if err := r.Register(plugin.Plugin{Name: "shell", Doc: "run shell snippets", Setup: noopSetup}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	p, ok := r.Lookup("shell")
	if !ok {
		t.Fatal("Lookup() = false, want registered plugin")
	}
	if p.Doc != "run shell snippets" {
		t.Errorf("Lookup().Doc = %q, want %q", p.Doc, "run shell snippets")
	}
}

func TestRegistry_RegisterValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		plugin  plugin.Plugin
		wantErr error
	}{
		{
			name:    "empty name",
			plugin:  plugin.Plugin{Setup: noopSetup},
			wantErr: plugin.ErrEmptyName,
		},
		{
			name:    "nil setup",
			plugin:  plugin.Plugin{Name: "broken"},
			wantErr: plugin.ErrNilSetup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := plugin.NewRegistry()
			if err := r.Register(tt.plugin); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	if err := r.Register(plugin.Plugin{Name: "conf", Setup: noopSetup}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := r.Register(plugin.Plugin{Name: "conf", Setup: noopSetup})
	var derr *plugin.DuplicateError
	if !errors.As(err, &derr) {
		t.Fatalf("Register() error = %v, want *DuplicateError", err)
	}
	if derr.Name != "conf" {
		t.Errorf("DuplicateError.Name = %q, want %q", derr.Name, "conf")
	}
}

func TestRegistry_SelectSubset(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		if err := r.Register(plugin.Plugin{Name: name, Setup: noopSetup}); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	got, err := r.Select("gamma", "alpha")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "gamma" || got[1].Name != "alpha" {
		t.Errorf("Select() = %v, want [gamma alpha] in the given order", names(got))
	}
}

func TestRegistry_SelectAllInRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(plugin.Plugin{Name: name, Setup: noopSetup}); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	got, err := r.Select()
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	if len(got) != len(want) {
		t.Fatalf("Select() returned %d plugins, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Select()[%d].Name = %q, want %q (registration order)", i, got[i].Name, name)
		}
	}
}

func TestRegistry_SelectUnknown(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	if err := r.Register(plugin.Plugin{Name: "known", Setup: noopSetup}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := r.Select("known", "nope")
	var uerr *plugin.UnknownPluginError
	if !errors.As(err, &uerr) {
		t.Fatalf("Select() error = %v, want *UnknownPluginError", err)
	}
	if uerr.Name != "nope" {
		t.Errorf("UnknownPluginError.Name = %q, want %q", uerr.Name, "nope")
	}
	if !errors.Is(err, plugin.ErrUnknown) {
		t.Errorf("Select() error = %v, want ErrUnknown", err)
	}
}

func TestApply_ContributesBindings(t *testing.T) {
	t.Parallel()

	c := container.New()
	p := plugin.Plugin{
		Name: "clock",
		Setup: func(c *container.Container) error {
			return c.Set("clock", "ticking")
		},
	}
	if err := plugin.Apply(c, p); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	got, err := c.Get("clock")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "ticking" {
		t.Errorf("Get() = %v, want %q", got, "ticking")
	}
}

func TestApply_WrapsFailureWithPluginName(t *testing.T) {
	t.Parallel()

	cause := errors.New("setup exploded")
	p := plugin.Plugin{
		Name:  "broken",
		Setup: func(*container.Container) error { return cause },
	}
	err := plugin.Apply(container.New(), p)
	if !errors.Is(err, cause) {
		t.Fatalf("Apply() error = %v, want wrapped cause", err)
	}
	if got := err.Error(); !strings.Contains(got, "broken") {
		t.Errorf("Apply() error = %q, want the plugin name in the message", got)
	}
}

func TestDefaultRegistry_Delegates(t *testing.T) {
	// No t.Parallel(): the default registry is process-wide state.
	name := "default-registry-probe"
	if err := plugin.Register(plugin.Plugin{Name: name, Setup: noopSetup}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, ok := plugin.Lookup(name); !ok {
		t.Error("Lookup() = false, want plugin visible through package-level API")
	}
	got, err := plugin.Select(name)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != name {
		t.Errorf("Select(%q) = %v, want exactly that plugin", name, names(got))
	}
	if plugin.Default().Len() == 0 {
		t.Error("Default().Len() = 0, want at least the registered plugin")
	}
}

func names(plugins []plugin.Plugin) []string {
	out := make([]string, len(plugins))
	for i, p := range plugins {
		out[i] = p.Name
	}
	return out
}
