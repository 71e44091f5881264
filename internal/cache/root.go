// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"os"
	"path/filepath"
)

// DefaultRoot resolves the conventional base cache directory.
// Precedence:
//  1. CACHECTL_DIR, if set and non-empty
//  2. os.UserCacheDir()/cachectl
//
// Returns ("", false) if a base cannot be resolved.
func DefaultRoot() (string, bool) {
	if c, ok := os.LookupEnv("CACHECTL_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "cachectl"), true
	}
	return "", false
}
