// SPDX-License-Identifier: MPL-2.0

package shellrun

import (
	"io"
	"os"

	"github.com/quill-sh/quill/container"
	"github.com/quill-sh/quill/plugin"
)

func init() {
	plugin.MustRegister(plugin.Plugin{
		Name:  "shellrun",
		Doc:   "in-process POSIX shell runner bound as \"shell\"",
		Setup: setup,
	})
}

func setup(c *container.Container) error {
	return c.Provide("shell", func(c *container.Container) (any, error) {
		stdin, err := container.As[io.Reader](c, container.Input)
		if err != nil {
			return nil, err
		}
		stdout, err := container.As[io.Writer](c, container.Output)
		if err != nil {
			return nil, err
		}
		return New(stdin, stdout, os.Stderr), nil
	})
}
