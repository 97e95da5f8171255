// SPDX-License-Identifier: MPL-2.0

package plugin

// defaultRegistry is the process-wide registry plugin packages register
// into from init().
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds p to the process-wide registry.
func Register(p Plugin) error {
	return defaultRegistry.Register(p)
}

// MustRegister adds p to the process-wide registry, panicking on error.
func MustRegister(p Plugin) {
	defaultRegistry.MustRegister(p)
}

// Select resolves names against the process-wide registry.
func Select(names ...string) ([]Plugin, error) {
	return defaultRegistry.Select(names...)
}

// Lookup returns the plugin registered under name in the process-wide
// registry.
func Lookup(name string) (Plugin, bool) {
	return defaultRegistry.Lookup(name)
}

// Names returns all plugin names in the process-wide registry, sorted.
func Names() []string {
	return defaultRegistry.Names()
}
