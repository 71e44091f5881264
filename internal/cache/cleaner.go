// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"time"

	"github.com/apex/log"
)

// StartCleaning launches the background sweeper that bounds the staleness
// of the index without relying on reads to trigger expiry. Idempotent:
// starting while already running is a no-op. The Registry starts the
// cleaner when it creates a Folder.
func (f *Folder) StartCleaning() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cleanCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.cleanCancel = cancel
	f.cleanWG.Add(1)
	go f.cleanLoop(ctx)
}

// StopCleaning cancels the background sweeper and waits for it to exit, so
// no timer survives Clear or registry removal. Idempotent.
func (f *Folder) StopCleaning() {
	f.mu.Lock()
	cancel := f.cleanCancel
	f.cleanCancel = nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	f.cleanWG.Wait()
}

func (f *Folder) cleanLoop(ctx context.Context) {
	defer f.cleanWG.Done()

	ticker := time.NewTicker(f.settings.timeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Purge()
		}
	}
}

// Purge sweeps every expired entry out of the index and off disk in one
// pass, and reports how many were removed. Unexpired entries are untouched;
// usage counts play no part here. Called on every cleaner tick and directly
// by cachectl purge.
func (f *Folder) Purge() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now().UnixMilli()
	removed := 0
	for el := f.order.Front(); el != nil; {
		next := el.Next()
		if e := el.Value.(*metaEntry); e.expired(now) {
			f.removeLocked(e)
			removed++
		}
		el = next
	}

	if removed > 0 {
		log.Debugf("purged %d expired entries from %s", removed, f.name)
	}
	return removed
}
