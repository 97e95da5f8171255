// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/quill-sh/quill/plugin"
)

type pluginsIn struct {
	Output io.Writer
}

func runPlugins(in pluginsIn) error {
	names := plugin.Names()
	if len(names) == 0 {
		fmt.Fprintln(in.Output, "no plugins registered")
		return nil
	}

	fmt.Fprintln(in.Output, TitleStyle.Render("Registered Plugins"))
	fmt.Fprintln(in.Output)

	for _, name := range names {
		p, ok := plugin.Lookup(name)
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %s", CmdStyle.Render(p.Name))
		if p.Doc != "" {
			line += fmt.Sprintf(" - %s", SubtitleStyle.Render(p.Doc))
		}
		fmt.Fprintln(in.Output, line)
	}

	return nil
}
