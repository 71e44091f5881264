// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsResolve(t *testing.T) {
	tests := []struct {
		name string
		in   Options
		want settings
	}{
		{
			name: "zero value gets all defaults",
			in:   Options{},
			want: settings{size: DefaultSize, trim: DefaultTrim, timeout: DefaultTimeout},
		},
		{
			name: "valid values pass through",
			in:   Options{Size: 50, Trim: 25, Timeout: 5 * time.Second},
			want: settings{size: 50, trim: 25, timeout: 5 * time.Second},
		},
		{
			name: "negative size falls back",
			in:   Options{Size: -1, Trim: 25, Timeout: time.Second},
			want: settings{size: DefaultSize, trim: 25, timeout: time.Second},
		},
		{
			name: "trim over 100 falls back",
			in:   Options{Size: 10, Trim: 101, Timeout: time.Second},
			want: settings{size: 10, trim: DefaultTrim, timeout: time.Second},
		},
		{
			name: "trim of 100 is allowed",
			in:   Options{Trim: 100},
			want: settings{size: DefaultSize, trim: 100, timeout: DefaultTimeout},
		},
		{
			name: "negative timeout falls back",
			in:   Options{Timeout: -time.Minute},
			want: settings{size: DefaultSize, trim: DefaultTrim, timeout: DefaultTimeout},
		},
		{
			name: "each field falls back independently",
			in:   Options{Size: -5, Trim: 0, Timeout: 0},
			want: settings{size: DefaultSize, trim: DefaultTrim, timeout: DefaultTimeout},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.resolve())
		})
	}
}
