// SPDX-License-Identifier: MPL-2.0

package container

import (
	"fmt"
	"reflect"
)

// As resolves name and asserts the value to T. A binding holding a
// different type yields a WrongTypeError.
func As[T any](c *Container, name string) (T, error) {
	var zero T
	v, err := c.Get(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &WrongTypeError{
			Name: name,
			Want: reflect.TypeFor[T]().String(),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return t, nil
}
