// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"container/list"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apex/log"
)

// metaEntry is the in-memory bookkeeping for one cached key. expiresAt is
// epoch milliseconds with 0 meaning "never expires".
type metaEntry struct {
	key        string
	path       string
	usageCount int
	addedAt    int64
	expiresAt  int64
}

func (e *metaEntry) expired(now int64) bool {
	return e.expiresAt != 0 && e.expiresAt <= now
}

// Folder is one cache namespace: a directory of record files plus the index
// over them. Obtain instances through a Registry rather than directly so
// there is at most one live Folder per name.
//
// The index is exclusively owned by its Folder; every operation takes the
// Folder mutex, which also serializes same-key writes.
type Folder struct {
	name     string
	path     string
	settings settings
	registry *Registry

	mu    sync.Mutex
	index map[string]*list.Element
	order *list.List // *metaEntry values in insertion order

	cleanCancel context.CancelFunc
	cleanWG     sync.WaitGroup
}

func newFolder(r *Registry, name string, opts Options) *Folder {
	return &Folder{
		name:     name,
		path:     filepath.Join(r.root, name),
		settings: opts.resolve(),
		registry: r,
		index:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Name returns the namespace name.
func (f *Folder) Name() string { return f.name }

// Path returns the directory that backs this Folder.
func (f *Folder) Path() string { return f.path }

// Len returns the number of indexed entries, including any that have
// expired but not yet been swept.
func (f *Folder) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.index)
}

// Keys returns the indexed keys in insertion order.
func (f *Folder) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, f.order.Len())
	for el := f.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*metaEntry).key)
	}
	return out
}

// EntryInfo is a point-in-time snapshot of one index entry, used by
// inspection surfaces. A zero ExpiresAt means the entry never expires.
type EntryInfo struct {
	Key        string
	Path       string
	UsageCount int
	AddedAt    time.Time
	ExpiresAt  time.Time
}

// Entries snapshots the index in insertion order.
func (f *Folder) Entries() []EntryInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]EntryInfo, 0, f.order.Len())
	for el := f.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*metaEntry)
		info := EntryInfo{
			Key:        e.key,
			Path:       e.path,
			UsageCount: e.usageCount,
			AddedAt:    time.UnixMilli(e.addedAt),
		}
		if e.expiresAt != 0 {
			info.ExpiresAt = time.UnixMilli(e.expiresAt)
		}
		out = append(out, info)
	}
	return out
}

// Get returns the cached document for key, or fallback on any kind of miss:
// unusable key, unknown key, expired record, missing or corrupt file. A hit
// increments the entry's usage count.
//
// A key that is missing from the index is not necessarily a miss. The index
// is rebuilt lazily after a restart, so Get reads the candidate file
// directly and, if it holds a live record, re-indexes it before returning.
func (f *Folder) Get(key string, fallback any) any {
	path, ok := entryPath(f.path, key)
	if !ok {
		return fallback
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now().UnixMilli()

	if el, ok := f.index[key]; ok {
		e := el.Value.(*metaEntry)
		if e.expired(now) {
			f.removeLocked(e)
			return fallback
		}

		raw, err := os.ReadFile(e.path)
		if err != nil {
			// Disk disagrees with the index. Prune and move on.
			log.Debugf("pruning stale index entry %q from %s: %v", key, f.name, err)
			f.dropLocked(e.key)
			return fallback
		}

		rec, state := decodeRecord(raw, now)
		if state != recordLive {
			f.removeLocked(e)
			return fallback
		}

		e.usageCount++
		return decodeData(rec.Data, fallback)
	}

	return f.recoverLocked(key, path, now, fallback)
}

// recoverLocked attempts single-key recovery for an unindexed key by
// reading the candidate file directly. Corrupt files are deleted so they
// don't fail recovery on every access; expired files are deleted outright.
// A live record is re-indexed with usageCount 1 to reflect this access.
func (f *Folder) recoverLocked(key, path string, now int64, fallback any) any {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}

	rec, state := decodeRecord(raw, now)
	switch state {
	case recordCorrupt:
		log.Warnf("deleting corrupt cache record %s", path)
		f.deleteFile(path)
		return fallback
	case recordExpired:
		f.deleteFile(path)
		return fallback
	}

	e := &metaEntry{
		key:        key,
		path:       path,
		usageCount: 1,
		addedAt:    rec.AddedAt,
	}
	if rec.ExpiresAt != nil {
		e.expiresAt = *rec.ExpiresAt
	}
	f.index[key] = f.order.PushBack(e)
	log.Debugf("recovered cache entry %q into %s", key, f.name)

	return decodeData(rec.Data, fallback)
}

// Set writes data for key, replacing any prior record whole. A ttl <= 0
// means the record never expires. The record file is written before the
// index is updated, so a half-finished write is never observable as live.
// Exceeding the entry cap triggers an eviction pass before Set returns.
func (f *Folder) Set(key string, data any, ttl time.Duration) error {
	path, ok := entryPath(f.path, key)
	if !ok {
		// Unusable keys are silently ignored; caching is best-effort.
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now().UnixMilli()

	var expiresAt int64
	var expiresPtr *int64
	if ttl > 0 {
		expiresAt = now + ttl.Milliseconds()
		expiresPtr = &expiresAt
	}

	raw, err := encodeRecord(data, now, expiresPtr)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.path, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(path, raw, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write cache record: %w", err)
	}

	if el, ok := f.index[key]; ok {
		// Overwrite in place; the entry keeps its position in the order.
		e := el.Value.(*metaEntry)
		e.path = path
		e.usageCount = 0
		e.addedAt = now
		e.expiresAt = expiresAt
	} else {
		f.index[key] = f.order.PushBack(&metaEntry{
			key:       key,
			path:      path,
			addedAt:   now,
			expiresAt: expiresAt,
		})
	}

	if len(f.index) > f.settings.size {
		f.evictLocked()
	}
	return nil
}

// Delete removes key from the index and best-effort-deletes its file. It
// never fails: unknown and unusable keys are no-ops, and the file is
// removed even when the key isn't indexed.
func (f *Folder) Delete(key string) {
	path, ok := entryPath(f.path, key)
	if !ok {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.dropLocked(key)
	f.deleteFile(path)
}

// Clear tears the Folder down: the background cleaner is stopped, the index
// emptied, the registry slot freed, and the whole directory removed. A
// later Registry.Get for the same name builds a fresh instance.
func (f *Folder) Clear() error {
	f.StopCleaning()

	f.mu.Lock()
	f.index = make(map[string]*list.Element)
	f.order.Init()
	f.mu.Unlock()

	if f.registry != nil {
		f.registry.forget(f.name)
	}

	if err := os.RemoveAll(f.path); err != nil {
		return fmt.Errorf("failed to clear cache folder %s: %w", f.name, err)
	}
	return nil
}

// dropLocked removes key from the index only.
func (f *Folder) dropLocked(key string) {
	el, ok := f.index[key]
	if !ok {
		return
	}
	delete(f.index, key)
	f.order.Remove(el)
}

// removeLocked drops the entry from the index and best-effort-deletes its
// backing file.
func (f *Folder) removeLocked(e *metaEntry) {
	f.dropLocked(e.key)
	f.deleteFile(e.path)
}

// deleteFile removes a record file, logging rather than failing. A missing
// file is fine; somebody beat us to it.
func (f *Folder) deleteFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warnf("failed to remove cache record %s: %v", path, err)
	}
}
