// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version holds the build version, overridable at link time with
// -ldflags "-X github.com/staranto/cachectlgo/internal/version.Version=...".
package version

var Version = "dev"
