// SPDX-License-Identifier: MPL-2.0

package conf

import (
	"github.com/quill-sh/quill/container"
	"github.com/quill-sh/quill/plugin"
)

func init() {
	plugin.MustRegister(plugin.Plugin{
		Name:  "conf",
		Doc:   "script-local configuration bound as \"conf\"",
		Setup: setup,
	})
}

func setup(c *container.Container) error {
	return c.Provide("conf", func(c *container.Container) (any, error) {
		// Containers assembled outside a script carry no script name;
		// the file base doubles as the prefix source then.
		name, err := container.As[string](c, container.ScriptName)
		if err != nil || name == "" {
			name = FileBase
		}
		return Open(WithEnvPrefix(EnvPrefix(name)))
	})
}
