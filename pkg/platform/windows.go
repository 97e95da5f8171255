// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// WindowsReservedNames holds the device names Windows refuses as file or
// directory names, regardless of extension.
var WindowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsWindowsReservedName reports whether name collides with a Windows
// reserved device name. The comparison is case-insensitive and ignores
// any extension, matching how Windows itself treats these names.
func IsWindowsReservedName(name string) bool {
	if name == "" {
		return false
	}
	base := name
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return WindowsReservedNames[strings.ToUpper(base)]
}
