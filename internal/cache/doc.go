// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache implements the namespaced disk-backed cache engine. Each
// named Folder owns one directory of JSON record files plus an in-memory
// index, with TTL expiration, usage-ranked eviction when the entry cap is
// exceeded, lazy recovery of cold index entries from disk, and a background
// sweeper tied to the Folder's lifetime. Folders are obtained from a
// Registry, which guarantees at most one live instance per name.
//
// The cache is an optimization layer: reads never fail, they degrade to the
// caller-supplied fallback. Only write-path filesystem faults surface as
// errors.
package cache
