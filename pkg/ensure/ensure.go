// SPDX-License-Identifier: MPL-2.0

// Package ensure provides small assertion helpers for script handlers.
// Each helper returns nil when the condition holds and a descriptive error
// otherwise; callers are expected to return that error unchanged so it
// reaches the command runner's standard error reporting.
package ensure

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrAssertion is the sentinel wrapped by every failed True assertion.
	ErrAssertion = errors.New("assertion failed")
	// ErrMissingValue is the sentinel wrapped by NotEmpty and NotNil
	// failures.
	ErrMissingValue = errors.New("required value is missing")
)

// True returns nil when cond holds, otherwise an error built from format
// and args, wrapping ErrAssertion.
func True(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrAssertion, fmt.Sprintf(format, args...))
}

// NotEmpty returns nil when value is non-empty, otherwise an error naming
// the value, wrapping ErrMissingValue.
func NotEmpty(name, value string) error {
	if value != "" {
		return nil
	}
	return fmt.Errorf("%w: %s must not be empty", ErrMissingValue, name)
}

// NotNil returns nil when v is neither nil nor a nil pointer, map, slice,
// channel, function, or interface, otherwise an error naming the value,
// wrapping ErrMissingValue.
func NotNil(name string, v any) error {
	if v == nil {
		return fmt.Errorf("%w: %s must not be nil", ErrMissingValue, name)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return fmt.Errorf("%w: %s must not be nil", ErrMissingValue, name)
		}
	}
	return nil
}
