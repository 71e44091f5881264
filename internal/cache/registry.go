// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"path/filepath"
	"sync"

	"github.com/apex/log"
)

// Registry is the single point of named access to Folders: at most one live
// instance per name. It is an explicit object rather than package state, so
// callers own its lifetime and tests stay isolated.
type Registry struct {
	root string

	mu      sync.Mutex
	folders map[string]*Folder
}

// NewRegistry creates a Registry rooted at the given directory. Each Folder
// becomes <root>/<name>. See DefaultRoot for the conventional root.
func NewRegistry(root string) *Registry {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Registry{
		root:    root,
		folders: make(map[string]*Folder),
	}
}

// Root returns the directory all Folders live under.
func (r *Registry) Root() string { return r.root }

// Get returns the Folder for name, creating it on first access and starting
// its background cleaner. An empty name falls back to DefaultFolder.
// Options are honored only on creation; an existing instance is returned
// unchanged.
func (r *Registry) Get(name string, opts ...Options) *Folder {
	if name == "" {
		name = DefaultFolder
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.folders[name]; ok {
		return f
	}

	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	f := newFolder(r, name, o)
	r.folders[name] = f
	f.StartCleaning()
	log.Debugf("created cache folder %s at %s", name, f.path)
	return f
}

// Names returns the registered folder names.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.folders))
	for name := range r.folders {
		out = append(out, name)
	}
	return out
}

// Delete stops the named Folder's cleaner and frees its registry slot.
// No-op for unknown names. Files on disk are left alone; Clear on the
// Folder is the destructive path.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	f := r.folders[name]
	delete(r.folders, name)
	r.mu.Unlock()

	if f != nil {
		f.StopCleaning()
	}
}

// forget frees the slot without touching the Folder. Called by Clear, which
// handles its own teardown.
func (r *Registry) forget(name string) {
	r.mu.Lock()
	delete(r.folders, name)
	r.mu.Unlock()
}
