// SPDX-License-Identifier: MPL-2.0

// Package logging constructs the structured loggers quill components share.
// The container's "log" binding uses Default, which honors the QUILL_VERBOSE,
// QUILL_LOG_LEVEL and QUILL_LOG_FORMAT environment variables; the script
// runner rebinds a fully configured logger once quill configuration is
// loaded.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatText renders human-readable styled lines.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"
)

// ErrInvalidFormat is the sentinel wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid log format")

// InvalidFormatError is returned when a Format value is not one of the
// defined formats. It wraps ErrInvalidFormat for errors.Is() compatibility.
type InvalidFormatError struct {
	Value Format
}

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid log format %q (valid: text, json)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// IsValid returns whether the Format is one of the defined formats. The
// zero value is valid and treated as text.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatJSON, "":
		return true, nil
	default:
		return false, []error{&InvalidFormatError{Value: f}}
	}
}

// New builds a logger writing to w at the given level and format.
func New(w io.Writer, level log.Level, format Format) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "quill",
		Level:  level,
	})
	if format == FormatJSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger
}

// Default builds the stderr logger used before quill configuration is
// loaded. QUILL_VERBOSE forces debug level; otherwise QUILL_LOG_LEVEL is
// parsed when set, falling back to info.
func Default() *log.Logger {
	level := log.InfoLevel
	if s := os.Getenv("QUILL_LOG_LEVEL"); s != "" {
		if parsed, err := log.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	if os.Getenv("QUILL_VERBOSE") != "" {
		level = log.DebugLevel
	}
	format := FormatText
	if Format(os.Getenv("QUILL_LOG_FORMAT")) == FormatJSON {
		format = FormatJSON
	}
	return New(os.Stderr, level, format)
}
