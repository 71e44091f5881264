// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/cache"
	"github.com/staranto/cachectlgo/internal/config"
	"github.com/staranto/cachectlgo/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewCacheRegistry builds a Registry rooted at the --root flag value.
func NewCacheRegistry(cmd *cli.Command) (*cache.Registry, error) {
	root := cmd.String("root")
	if root == "" {
		return nil, errors.New("no cache root: set --root, CACHECTL_DIR, or config 'root'")
	}
	return cache.NewRegistry(root), nil
}

// FolderOptions reads the configured defaults for a named folder out of the
// config file (folders.<name>.size/trim/timeout, timeout in milliseconds).
// Anything missing or malformed stays zero and falls back inside the
// engine.
func FolderOptions(name string) cache.Options {
	var opts cache.Options
	opts.Size, _ = config.GetInt("folders."+name+".size", 0)
	opts.Trim, _ = config.GetInt("folders."+name+".trim", 0)
	if ms, err := config.GetInt("folders." + name + ".timeout"); err == nil {
		opts.Timeout = time.Duration(ms) * time.Millisecond
	}
	return opts
}

// OpenFolder resolves the named folder with its configured defaults.
func OpenFolder(cmd *cli.Command, name string) (*cache.Folder, error) {
	r, err := NewCacheRegistry(cmd)
	if err != nil {
		return nil, err
	}
	return r.Get(name, FolderOptions(name)), nil
}

// RecordKeys lists the logical keys for a folder by its on-disk record
// files. Sanitized names are idempotent under the sanitizer, so the
// filename sans extension round-trips as a usable key.
func RecordKeys(names []string) []string {
	keys := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys
}
