// SPDX-License-Identifier: MPL-2.0

// Package config handles quill configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/quill/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/quill/config.cue on macOS, %APPDATA%\quill\config.cue
// on Windows), falling back to a project-local quill.cue in the working directory.
// QUILL_-prefixed environment variables override individual values.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
