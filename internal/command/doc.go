// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for cachectl. It wires flags,
// validators, and actions for the ls, get, set, rm, purge, and clear
// subcommands on top of the cache engine.
package command
