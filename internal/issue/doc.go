// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// The package defines error types that carry remediation steps plus a catalog
// of Markdown-formatted guidance rendered when script authors or users hit a
// known failure.
package issue
