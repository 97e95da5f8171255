// SPDX-License-Identifier: MPL-2.0

package container

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned when a binding is registered under an empty
	// name.
	ErrEmptyName = errors.New("binding name must not be empty")
	// ErrNilFactory is returned when Provide is called with a nil factory.
	ErrNilFactory = errors.New("binding factory must not be nil")
	// ErrNotFound is the sentinel wrapped by NotFoundError.
	ErrNotFound = errors.New("binding not found")
	// ErrWrongType is the sentinel wrapped by WrongTypeError.
	ErrWrongType = errors.New("binding has wrong type")
	// ErrCycle is the sentinel wrapped by CycleError.
	ErrCycle = errors.New("binding cycle detected")
	// ErrNotCallable is the sentinel wrapped by NotCallableError.
	ErrNotCallable = errors.New("binding is not callable")
)

type (
	// NotFoundError is returned when a name resolves to no binding.
	// It wraps ErrNotFound for errors.Is() compatibility.
	NotFoundError struct {
		Name  string
		Known []string
	}

	// WrongTypeError is returned when a binding exists but does not hold
	// the requested type. It wraps ErrWrongType for errors.Is()
	// compatibility.
	WrongTypeError struct {
		Name string
		Want string
		Got  string
	}

	// FactoryError is returned when a lazy binding's factory fails. It
	// unwraps to the factory's own error.
	FactoryError struct {
		Name string
		Err  error
	}

	// CycleError is returned when resolving a binding requires the binding
	// itself. It wraps ErrCycle for errors.Is() compatibility.
	CycleError struct {
		Chain []string
	}

	// NotCallableError is returned by Call when the named binding is not a
	// service method. It wraps ErrNotCallable for errors.Is()
	// compatibility.
	NotCallableError struct {
		Name string
	}
)

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("binding %q not found (container is empty)", e.Name)
	}
	return fmt.Sprintf("binding %q not found (known bindings: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Error implements the error interface for WrongTypeError.
func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("binding %q holds %s, want %s", e.Name, e.Got, e.Want)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *WrongTypeError) Unwrap() error {
	return ErrWrongType
}

// Error implements the error interface for FactoryError.
func (e *FactoryError) Error() string {
	return fmt.Sprintf("building binding %q: %v", e.Name, e.Err)
}

// Unwrap returns the factory's error so callers can match the cause.
func (e *FactoryError) Unwrap() error {
	return e.Err
}

// Error implements the error interface for CycleError.
func (e *CycleError) Error() string {
	return fmt.Sprintf("binding cycle: %s", strings.Join(e.Chain, " -> "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// Error implements the error interface for NotCallableError.
func (e *NotCallableError) Error() string {
	return fmt.Sprintf("binding %q is not a service method", e.Name)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *NotCallableError) Unwrap() error {
	return ErrNotCallable
}
