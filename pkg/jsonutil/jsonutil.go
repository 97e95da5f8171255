// SPDX-License-Identifier: MPL-2.0

// Package jsonutil encodes and decodes JSON with script-friendly defaults:
// pretty-printed output with HTML escaping disabled (forward slashes, angle
// brackets and ampersands pass through verbatim), and decode errors that
// name the byte offset of the first syntax problem.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Encode renders v as pretty-printed JSON with two-space indentation and no
// trailing newline. Unlike json.Marshal, "<", ">", "&" and "/" are not
// escaped.
func Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode parses s into the generic JSON shape (map[string]any, []any,
// string, float64, bool, nil). The literal "null" decodes to nil without
// error. Syntactically invalid input, including trailing garbage after a
// complete value, fails with an error naming the byte offset.
func Decode(s string) (any, error) {
	var v any
	if err := unmarshalStrict(s, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeInto parses s into v, which must be a non-nil pointer. Error
// semantics match Decode.
func DecodeInto(s string, v any) error {
	return unmarshalStrict(s, v)
}

func unmarshalStrict(s string, v any) error {
	err := json.Unmarshal([]byte(s), v)
	if err == nil {
		return nil
	}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Errorf("decoding JSON at offset %d: %w", syn.Offset, err)
	}
	return fmt.Errorf("decoding JSON: %w", err)
}
