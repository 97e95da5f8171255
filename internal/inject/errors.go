// SPDX-License-Identifier: MPL-2.0

package inject

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFunc is the sentinel wrapped by InvalidFuncError.
	ErrInvalidFunc = errors.New("invalid handler function")
	// ErrUnboundField is the sentinel wrapped by UnboundFieldError.
	ErrUnboundField = errors.New("no value for field")
	// ErrFieldType is the sentinel wrapped by FieldTypeError.
	ErrFieldType = errors.New("value does not fit field")
)

type (
	// InvalidFuncError is returned by NewFunc for a value that does not
	// follow the handler convention. It wraps ErrInvalidFunc for
	// errors.Is() compatibility.
	InvalidFuncError struct {
		Type   string
		Reason string
	}

	// UnboundFieldError is returned when a required field's name resolves
	// to neither a call argument nor a container binding. It wraps
	// ErrUnboundField for errors.Is() compatibility.
	UnboundFieldError struct {
		Field   string
		Binding string
	}

	// FieldTypeError is returned when a resolved value cannot be assigned
	// to its field. It wraps ErrFieldType for errors.Is() compatibility.
	FieldTypeError struct {
		Field   string
		Binding string
		Want    string
		Got     string
	}
)

// Error implements the error interface for InvalidFuncError.
func (e *InvalidFuncError) Error() string {
	return fmt.Sprintf("invalid handler %s: %s", e.Type, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidFuncError) Unwrap() error {
	return ErrInvalidFunc
}

// Error implements the error interface for UnboundFieldError.
func (e *UnboundFieldError) Error() string {
	return fmt.Sprintf("field %s: no argument or binding named %q", e.Field, e.Binding)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnboundFieldError) Unwrap() error {
	return ErrUnboundField
}

// Error implements the error interface for FieldTypeError.
func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %s: value for %q is %s, want %s", e.Field, e.Binding, e.Got, e.Want)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *FieldTypeError) Unwrap() error {
	return ErrFieldType
}
