// SPDX-License-Identifier: MPL-2.0

// Package records groups collections of records into nested lookup maps.
// A record is a map with string keys or a struct; collections are slices of
// either. Indexing walks a sequence of key fields and produces one map level
// per key, with the full record stored at the deepest level.
package records

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type (
	// UncomparableKeyError reports a key field whose value cannot be used as
	// a map key (slices, maps, functions).
	UncomparableKeyError struct {
		Key   string
		Value any
	}
)

// ErrNoKeys is returned by Index when no key fields are given.
var ErrNoKeys = errors.New("at least one key field is required")

func (e *UncomparableKeyError) Error() string {
	return fmt.Sprintf("key field %q has uncomparable value of type %T", e.Key, e.Value)
}

// Index groups recs, a slice of records, into a nested map keyed by the
// given fields in order. With keys ("a", "b"), the result maps each distinct
// value of "a" to a map from values of "b" to the record itself. A record
// missing a key field (or holding nil there) is filed under the nil key.
// When two records share the full key path, the later one wins.
//
// Records may be maps with string keys, structs, or pointers to structs;
// struct fields match a key by their json tag first, then by name
// (case-insensitive).
func Index(recs any, keys ...string) (map[any]any, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	rv := reflect.ValueOf(recs)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("indexing records: want a slice, got %T", recs)
	}

	root := make(map[any]any)
	for i := 0; i < rv.Len(); i++ {
		rec := rv.Index(i).Interface()
		node := root
		for depth, key := range keys {
			kv, err := fieldValue(rec, key)
			if err != nil {
				return nil, fmt.Errorf("indexing record %d: %w", i, err)
			}
			if kv != nil && !reflect.TypeOf(kv).Comparable() {
				return nil, &UncomparableKeyError{Key: key, Value: kv}
			}
			if depth == len(keys)-1 {
				node[kv] = rec
				continue
			}
			child, ok := node[kv].(map[any]any)
			if !ok {
				child = make(map[any]any)
				node[kv] = child
			}
			node = child
		}
	}
	return root, nil
}

// fieldValue extracts the named field from a single record. Missing fields
// yield nil rather than an error.
func fieldValue(rec any, key string) (any, error) {
	rv := reflect.ValueOf(rec)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, fmt.Errorf("record map has %s keys, want string", kt)
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, nil
		}
		return mv.Interface(), nil
	case reflect.Struct:
		if fv, ok := structField(rv, key); ok {
			return fv.Interface(), nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("record of type %T is not a map or struct", rec)
	}
}

// structField finds an exported field matching key by json tag, then by
// case-insensitive name.
func structField(rv reflect.Value, key string) (reflect.Value, bool) {
	rt := rv.Type()
	var byName reflect.Value
	found := false
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag == key {
			return rv.Field(i), true
		}
		if !found && strings.EqualFold(sf.Name, key) {
			byName = rv.Field(i)
			found = true
		}
	}
	return byName, found
}
