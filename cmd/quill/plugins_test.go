// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunPlugins_ListsRegisteredPlugins(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := runPlugins(pluginsIn{Output: &out}); err != nil {
		t.Fatalf("runPlugins() error = %v", err)
	}

	// The builtin import in main.go registers the bundled plugins.
	for _, name := range []string{"conf", "shellrun"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("listing missing plugin %q:\n%s", name, out.String())
		}
	}
}
