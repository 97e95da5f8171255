// SPDX-License-Identifier: MPL-2.0

// Package container implements the named service container scripts are
// built around. Bindings are registered under plain string names, either
// eagerly (Set) or as lazy factories built at most once (Provide), and
// resolved by name at call time. A fresh container starts with the
// conventional bindings every script relies on: "input", "output", "ui",
// "log", and "container" (the container itself).
//
// The container is not a general dependency-injection framework: there is
// no type-based lookup, no lifecycle management beyond factory memoization,
// and no scoping. Names are the whole contract.
package container

import (
	"io"
	"os"
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/quill-sh/quill/internal/inject"
	"github.com/quill-sh/quill/internal/logging"
	"github.com/quill-sh/quill/ui"
)

// Conventional binding names seeded by New.
const (
	Input     = "input"
	Output    = "output"
	UI        = "ui"
	Log       = "log"
	Container = "container"

	// ScriptName and ScriptVersion are bound by the script runner rather
	// than by New; plugins read them to derive per-script defaults.
	ScriptName    = "script-name"
	ScriptVersion = "script-version"
)

type (
	// Factory builds a lazy binding's value. It receives the container so
	// it can resolve other bindings by name.
	Factory func(c *Container) (any, error)

	// A Container maps names to service values. The zero value is not
	// usable; call New.
	Container struct {
		mu       sync.Mutex
		bindings map[string]*binding
		building []string
	}

	binding struct {
		value   any
		factory Factory
		method  *inject.Func
		built   bool
		seeded  bool
	}
)

// New returns a container seeded with the conventional bindings: "input"
// (os.Stdin), "output" (os.Stdout), "container" (the container itself),
// "ui" (a lazily composed *ui.UI over the current input/output bindings)
// and "log" (a lazily constructed logger honoring quill configuration).
func New() *Container {
	c := &Container{bindings: make(map[string]*binding)}
	c.bindings[Input] = &binding{value: io.Reader(os.Stdin), built: true, seeded: true}
	c.bindings[Output] = &binding{value: io.Writer(os.Stdout), built: true, seeded: true}
	c.bindings[Container] = &binding{value: c, built: true, seeded: true}
	c.bindings[UI] = &binding{factory: uiFactory, seeded: true}
	c.bindings[Log] = &binding{factory: logFactory, seeded: true}
	return c
}

// uiFactory composes the "ui" default from the container's current input
// and output bindings.
func uiFactory(c *Container) (any, error) {
	in, err := As[io.Reader](c, Input)
	if err != nil {
		return nil, err
	}
	out, err := As[io.Writer](c, Output)
	if err != nil {
		return nil, err
	}
	return ui.New(in, out), nil
}

func logFactory(*Container) (any, error) {
	return logging.Default(), nil
}

// Set registers value under name, replacing any existing binding. A lazy
// binding replaced by Set loses its memoized instance.
func (c *Container) Set(name string, value any) error {
	if name == "" {
		return ErrEmptyName
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[name] = &binding{value: value, built: true}
	return nil
}

// Provide registers a lazy binding under name. The factory runs on the
// first Get and its value is reused afterwards. Registering over an
// existing name replaces the binding and drops any memoized instance.
func (c *Container) Provide(name string, factory Factory) error {
	if name == "" {
		return ErrEmptyName
	}
	if factory == nil {
		return ErrNilFactory
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[name] = &binding{factory: factory}
	return nil
}

// Get resolves name to its value, building a lazy binding on first use.
func (c *Container) Get(name string) (any, error) {
	c.mu.Lock()
	b, ok := c.bindings[name]
	if !ok {
		err := &NotFoundError{Name: name, Known: c.namesLocked()}
		c.mu.Unlock()
		return nil, err
	}
	if b.built || b.factory == nil {
		v := b.value
		c.mu.Unlock()
		return v, nil
	}
	if slices.Contains(c.building, name) {
		chain := append(slices.Clone(c.building), name)
		c.mu.Unlock()
		return nil, &CycleError{Chain: chain}
	}
	c.building = append(c.building, name)
	c.mu.Unlock()

	v, err := b.factory(c)

	c.mu.Lock()
	c.building = c.building[:len(c.building)-1]
	if err != nil {
		c.mu.Unlock()
		return nil, &FactoryError{Name: name, Err: err}
	}
	// Memoize only if the binding was not replaced while building.
	if cur := c.bindings[name]; cur == b {
		b.value = v
		b.built = true
	}
	c.mu.Unlock()
	return v, nil
}

// MustGet is Get panicking on error. Meant for wiring code that runs at
// script start, where a missing binding is a programming error.
func (c *Container) MustGet(name string) any {
	v, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether name is bound, without building lazy bindings.
func (c *Container) Has(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.bindings[name]
	return ok
}

// Seeded reports whether name still carries the binding New installed.
// Set, Provide and Method clear it; the script runner uses this to apply
// configuration only to bindings the script author never touched.
func (c *Container) Seeded(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.bindings[name]
	return ok && b.seeded
}

// Names returns all bound names, sorted.
func (c *Container) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.namesLocked()
}

func (c *Container) namesLocked() []string {
	names := maps.Keys(c.bindings)
	slices.Sort(names)
	return names
}
