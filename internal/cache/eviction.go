// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"sort"

	"github.com/apex/log"
)

// evictLocked trims the least-useful slice of the index once the entry cap
// has been exceeded. The trim is a percentage of the current index rather
// than a fixed count, so eviction stays proportional to cache growth.
// Entries are ranked by ascending usage count with older addedAt breaking
// ties: oldest-and-least-used goes first. floor semantics mean a small
// index under a low trim percentage may legitimately shrink by zero.
func (f *Folder) evictLocked() {
	toRemove := len(f.index) * f.settings.trim / 100

	// A tiny cap with a low trim percentage can floor to zero; the cap
	// invariant still has to hold, so always shed at least the overflow.
	if overflow := len(f.index) - f.settings.size; toRemove < overflow {
		toRemove = overflow
	}
	if toRemove <= 0 {
		return
	}

	ranked := make([]*metaEntry, 0, len(f.index))
	for el := f.order.Front(); el != nil; el = el.Next() {
		ranked = append(ranked, el.Value.(*metaEntry))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].usageCount != ranked[j].usageCount {
			return ranked[i].usageCount < ranked[j].usageCount
		}
		return ranked[i].addedAt < ranked[j].addedAt
	})

	for _, e := range ranked[:toRemove] {
		f.removeLocked(e)
	}

	log.Debugf("evicted %d entries from %s, %d remain", toRemove, f.name, len(f.index))
}
