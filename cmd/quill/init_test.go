// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quill-sh/quill/internal/testutil"
)

func TestRunInit_ScaffoldsScript(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var out bytes.Buffer

	if err := runInit(initIn{Dir: dir, Name: "deploy", Output: &out}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "main.go"))
	if err != nil {
		t.Fatalf("reading scaffolded script: %v", err)
	}
	if !strings.Contains(string(content), `quill.New("deploy"`) {
		t.Errorf("scaffold does not name the script:\n%s", content)
	}
	if !strings.Contains(string(content), "package main") {
		t.Errorf("scaffold is not a main package:\n%s", content)
	}

	if !strings.Contains(out.String(), "Created") {
		t.Errorf("output missing confirmation: %q", out.String())
	}
	if !strings.Contains(out.String(), "Next steps:") {
		t.Errorf("output missing next steps: %q", out.String())
	}
	if !strings.Contains(out.String(), "go mod init deploy") {
		t.Errorf("output missing module hint: %q", out.String())
	}
}

func TestRunInit_DerivesNameFromDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mytool")
	var out bytes.Buffer

	if err := runInit(initIn{Dir: dir, Output: &out}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "main.go"))
	if err != nil {
		t.Fatalf("reading scaffolded script: %v", err)
	}
	if !strings.Contains(string(content), `quill.New("mytool"`) {
		t.Errorf("scaffold does not derive the name from the directory:\n%s", content)
	}
}

func TestRunInit_RefusesToOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "main.go")
	testutil.MustWriteFile(t, target, []byte("package main\n"), 0o644)

	var out bytes.Buffer
	err := runInit(initIn{Dir: dir, Name: "deploy", Output: &out})
	if err == nil {
		t.Fatal("runInit() error = nil, want refusal")
	}
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("runInit() error = %v, want os.ErrExist in the chain", err)
	}

	content, readErr := os.ReadFile(target)
	if readErr != nil {
		t.Fatalf("reading target: %v", readErr)
	}
	if string(content) != "package main\n" {
		t.Errorf("target was modified despite refusal:\n%s", content)
	}
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "main.go")
	testutil.MustWriteFile(t, target, []byte("// stale\n"), 0o644)

	var out bytes.Buffer
	if err := runInit(initIn{Dir: dir, Name: "deploy", Force: true, Output: &out}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	if strings.Contains(string(content), "stale") {
		t.Errorf("target was not overwritten:\n%s", content)
	}
	if !strings.Contains(string(content), `quill.New("deploy"`) {
		t.Errorf("overwritten target is not the scaffold:\n%s", content)
	}
}

func TestRunInit_RejectsReservedNames(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := runInit(initIn{Dir: t.TempDir(), Name: "con", Output: &out})
	if err == nil {
		t.Fatal("runInit() error = nil, want reserved name error")
	}
	if !strings.Contains(err.Error(), "reserved") {
		t.Errorf("runInit() error = %v, want mention of the reserved name", err)
	}
}

func TestRenderScaffold_ProducesParsableGo(t *testing.T) {
	t.Parallel()

	content, err := renderScaffold("demo")
	if err != nil {
		t.Fatalf("renderScaffold() error = %v", err)
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "main.go", content, parser.AllErrors); err != nil {
		t.Fatalf("scaffold does not parse as Go: %v\n%s", err, content)
	}
	if !strings.Contains(content, `quill.New("demo"`) {
		t.Errorf("scaffold does not name the script:\n%s", content)
	}
}
