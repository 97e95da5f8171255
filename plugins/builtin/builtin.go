// SPDX-License-Identifier: MPL-2.0

// Package builtin registers every built-in plugin with the default
// registry. Scripts pull all of them in with one blank import:
//
//	import _ "github.com/quill-sh/quill/plugins/builtin"
package builtin

import (
	_ "github.com/quill-sh/quill/plugins/conf"
	_ "github.com/quill-sh/quill/plugins/shellrun"
)
