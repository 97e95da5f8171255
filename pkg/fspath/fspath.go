// SPDX-License-Identifier: MPL-2.0

// Package fspath builds filesystem paths and URLs from loosely shaped
// element lists. Elements may be strings or nested sequences of strings;
// they are flattened in order, joined with the separator, and any run of
// consecutive separators is collapsed into one. Unlike filepath.Join, no
// lexical normalization happens: "." and ".." segments pass through
// untouched.
package fspath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Join flattens elems and joins them with the platform path separator,
// collapsing any run of consecutive separators into one. Elements may be
// string, []string, or []any (flattened recursively, in order); any other
// value is rendered with fmt.Sprint. An empty element between two parts
// collapses away; a leading or trailing empty element leaves a single
// leading or trailing separator.
//
// On Windows the separator is '\\' and only runs of '\\' are collapsed;
// forward slashes inside elements pass through verbatim.
func Join(elems ...any) string {
	parts := flatten(nil, elems)
	return collapse(strings.Join(parts, string(filepath.Separator)), filepath.Separator)
}

// JoinURL flattens elems like Join but always joins with '/' and collapses
// runs of '/'. The double slash of a "://" scheme separator is kept intact,
// so JoinURL("https://", "host", "/a//b") yields "https://host/a/b".
func JoinURL(elems ...any) string {
	parts := flatten(nil, elems)
	return collapseURL(strings.Join(parts, "/"))
}

// flatten appends the string form of every element in elems to dst,
// descending into nested sequences in order.
func flatten(dst []string, elems []any) []string {
	for _, e := range elems {
		switch v := e.(type) {
		case string:
			dst = append(dst, v)
		case []string:
			dst = append(dst, v...)
		case []any:
			dst = flatten(dst, v)
		case nil:
			// contributes nothing
		default:
			dst = append(dst, fmt.Sprint(v))
		}
	}
	return dst
}

// collapseURL rewrites s so that every run of '/' becomes a single '/',
// except that a run immediately following ':' keeps two slashes.
func collapseURL(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	afterColon := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '/' {
			run = 0
			afterColon = c == ':'
			b.WriteByte(c)
			continue
		}
		run++
		if run == 1 || (run == 2 && afterColon) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// collapse rewrites s so that every run of sep becomes a single sep.
func collapse(s string, sep byte) string {
	if !strings.Contains(s, string([]byte{sep, sep})) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prevSep := false
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
