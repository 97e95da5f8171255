// SPDX-License-Identifier: MPL-2.0

// Package plugin implements the process-wide registry scripts select their
// service plugins from. A plugin is a named setup function that contributes
// bindings to a container. Plugin packages register themselves at load time
// from init(), typically guarded by a blank import in the script:
//
//	import _ "github.com/quill-sh/quill/plugins/builtin"
//
// Registration happens only during package initialization; afterwards the
// registry is read-only and selection is deterministic.
package plugin

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/quill-sh/quill/container"
)

var (
	// ErrEmptyName is returned when a plugin is registered without a name.
	ErrEmptyName = errors.New("plugin name must not be empty")
	// ErrNilSetup is returned when a plugin is registered without a setup
	// function.
	ErrNilSetup = errors.New("plugin setup function must not be nil")
	// ErrDuplicate is the sentinel wrapped by DuplicateError.
	ErrDuplicate = errors.New("plugin already registered")
	// ErrUnknown is the sentinel wrapped by UnknownPluginError.
	ErrUnknown = errors.New("unknown plugin")
)

type (
	// SetupFunc contributes bindings to a container. It may add new
	// bindings or override existing ones.
	SetupFunc func(c *container.Container) error

	// Plugin is a named, documented setup function.
	Plugin struct {
		// Name identifies the plugin for selection. Names are unique per
		// registry.
		Name string
		// Doc is a one-line description shown by plugin listings.
		Doc string
		// Setup contributes the plugin's bindings.
		Setup SetupFunc
	}

	// Registry holds registered plugins and remembers registration order.
	Registry struct {
		mu     sync.Mutex
		byName map[string]Plugin
		order  []string
	}

	// DuplicateError is returned when a plugin name is registered twice.
	// It wraps ErrDuplicate for errors.Is() compatibility.
	DuplicateError struct {
		Name string
	}

	// UnknownPluginError is returned when a selection names a plugin that
	// was never registered. It wraps ErrUnknown for errors.Is()
	// compatibility.
	UnknownPluginError struct {
		Name  string
		Known []string
	}
)

// Error implements the error interface for DuplicateError.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("plugin %q already registered", e.Name)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// Error implements the error interface for UnknownPluginError.
func (e *UnknownPluginError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown plugin %q (no plugins registered)", e.Name)
	}
	return fmt.Sprintf("unknown plugin %q (registered: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnknownPluginError) Unwrap() error {
	return ErrUnknown
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Plugin)}
}

// Register adds p to the registry. An empty name, a nil setup function, or
// a name registered before is an error.
func (r *Registry) Register(p Plugin) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Setup == nil {
		return ErrNilSetup
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[p.Name]; exists {
		return &DuplicateError{Name: p.Name}
	}
	r.byName[p.Name] = p
	r.order = append(r.order, p.Name)
	return nil
}

// MustRegister is Register panicking on error, for init()-time
// registration where a failure is a programming error.
func (r *Registry) MustRegister(p Plugin) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Select resolves names to plugins, in the given order. With no names it
// returns every registered plugin in registration order. A name that
// resolves to no plugin is an UnknownPluginError.
func (r *Registry) Select(names ...string) ([]Plugin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(names) == 0 {
		all := make([]Plugin, 0, len(r.order))
		for _, name := range r.order {
			all = append(all, r.byName[name])
		}
		return all, nil
	}

	selected := make([]Plugin, 0, len(names))
	for _, name := range names {
		p, ok := r.byName[name]
		if !ok {
			return nil, &UnknownPluginError{Name: name, Known: r.namesLocked()}
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// Lookup returns the plugin registered under name.
func (r *Registry) Lookup(name string) (Plugin, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byName[name]
	return p, ok
}

// Names returns all registered plugin names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.namesLocked()
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

func (r *Registry) namesLocked() []string {
	names := maps.Keys(r.byName)
	slices.Sort(names)
	return names
}

// Apply runs each plugin's setup against c, in order. The first failure
// stops the run and is wrapped with the plugin's name.
func Apply(c *container.Container, plugins ...Plugin) error {
	for _, p := range plugins {
		if err := p.Setup(c); err != nil {
			return fmt.Errorf("applying plugin %q: %w", p.Name, err)
		}
	}
	return nil
}
