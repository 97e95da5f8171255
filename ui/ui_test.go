// SPDX-License-Identifier: MPL-2.0

package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quill-sh/quill/ui"
)

func TestNew_NonTerminalInputDefaultsToAccessible(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	u := ui.New(strings.NewReader(""), &out)
	// A buffer is not a terminal, so styled output must be plain.
	u.Successf("done")
	if got, want := out.String(), "done\n"; got != want {
		t.Errorf("Successf() wrote %q, want %q", got, want)
	}
}

func TestPrintf(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	u := ui.New(strings.NewReader(""), &out)
	u.Printf("hello %s", "world")
	if got, want := out.String(), "hello world"; got != want {
		t.Errorf("Printf() wrote %q, want %q", got, want)
	}
}

func TestStyledHelpers_PlainWithoutColor(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	u := ui.New(strings.NewReader(""), &out, ui.WithColor(false))

	u.Titlef("title")
	u.Infof("info %d", 1)
	u.Warnf("warn\n")
	u.Errorf("error")

	want := "title\ninfo 1\nwarn\nerror\n"
	if got := out.String(); got != want {
		t.Errorf("styled helpers wrote %q, want %q", got, want)
	}
}

func TestSpinner_AccessibleRunsActionInline(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	u := ui.New(strings.NewReader(""), &out, ui.WithAccessible(true))

	ran := false
	if err := u.Spinner("working", func() error { ran = true; return nil }); err != nil {
		t.Fatalf("Spinner() error = %v", err)
	}
	if !ran {
		t.Error("Spinner() did not run the action")
	}
	if !strings.Contains(out.String(), "working") {
		t.Errorf("Spinner() wrote %q, want the title", out.String())
	}
}
