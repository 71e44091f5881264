// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import "time"

const (
	// DefaultFolder is the namespace used when no name is given.
	DefaultFolder = "default"

	// DefaultSize is the entry cap applied when none is configured.
	DefaultSize = 500

	// DefaultTrim is the percentage of entries removed per eviction pass.
	DefaultTrim = 10

	// DefaultTimeout is the background sweep interval.
	DefaultTimeout = 60 * time.Second
)

// Options are the raw caller-supplied knobs for a Folder. Zero values mean
// "use the default". Malformed values never error; each field falls back to
// its default independently.
type Options struct {
	// Size is the cap on indexed entries.
	Size int
	// Trim is the percentage of entries, in (0,100], evicted per pass.
	Trim int
	// Timeout is the interval between background expired-entry sweeps.
	Timeout time.Duration
}

// settings is the validated form of Options actually used by a Folder.
type settings struct {
	size    int
	trim    int
	timeout time.Duration
}

// resolve validates each option in isolation with silent fallback, so one
// bad value never poisons the rest.
func (o Options) resolve() settings {
	s := settings{
		size:    DefaultSize,
		trim:    DefaultTrim,
		timeout: DefaultTimeout,
	}
	if o.Size > 0 {
		s.size = o.Size
	}
	if o.Trim > 0 && o.Trim <= 100 {
		s.trim = o.Trim
	}
	if o.Timeout > 0 {
		s.timeout = o.Timeout
	}
	return s
}
