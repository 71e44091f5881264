// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"path/filepath"
	"regexp"
	"strings"
)

// recordExt is the extension applied to every record file.
const recordExt = ".json"

// maxNameLen caps the sanitized portion of a filename, pre-extension.
const maxNameLen = 100

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeKey maps an arbitrary key to a safe local filename, without
// directory or extension. Leading traversal sequences and leading dots are
// stripped so the result can never escape a folder or turn into a hidden or
// parent reference. Every remaining character outside [A-Za-z0-9._-] is
// replaced with a hyphen and the result is truncated to 100 characters.
// Deterministic: the same key always yields the same name. An empty result
// means the key is unusable.
func SanitizeKey(key string) string {
	name := strings.TrimLeft(key, "./\\")
	name = unsafeChars.ReplaceAllString(name, "-")
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	return name
}

// entryPath resolves key to the absolute record path inside dir. The second
// return is false when the key sanitizes to nothing usable.
func entryPath(dir, key string) (string, bool) {
	name := SanitizeKey(key)
	if name == "" {
		return "", false
	}
	return filepath.Join(dir, name+recordExt), true
}
