// SPDX-License-Identifier: MPL-2.0

package quill_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/quill-sh/quill"
)

func TestExitError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *quill.ExitError
		want string
	}{
		{
			name: "code only",
			err:  &quill.ExitError{Code: 3},
			want: "exit status 3",
		},
		{
			name: "wrapped message",
			err:  &quill.ExitError{Code: 1, Err: errors.New("deploy failed")},
			want: "deploy failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExit(t *testing.T) {
	t.Parallel()

	err := quill.Exit(42)
	var exitErr *quill.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Exit() = %T, want *ExitError", err)
	}
	if exitErr.Code != 42 {
		t.Errorf("Code = %d, want 42", exitErr.Code)
	}
	if exitErr.Err != nil {
		t.Errorf("Err = %v, want nil", exitErr.Err)
	}
}

func TestExitf(t *testing.T) {
	t.Parallel()

	err := quill.Exitf(2, "missing %s", "credentials")
	var exitErr *quill.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Exitf() = %T, want *ExitError", err)
	}
	if exitErr.Code != 2 {
		t.Errorf("Code = %d, want 2", exitErr.Code)
	}
	if got := err.Error(); got != "missing credentials" {
		t.Errorf("Error() = %q, want %q", got, "missing credentials")
	}
}

func TestExitf_UnwrapPreservesChain(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := quill.Exitf(7, "wrapped: %w", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want the cause preserved through Unwrap")
	}
}

func TestExitError_FormatsLikeAnError(t *testing.T) {
	t.Parallel()

	got := fmt.Sprintf("run failed: %v", quill.Exit(9))
	if got != "run failed: exit status 9" {
		t.Errorf("formatted = %q", got)
	}
}
