// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	const now = int64(1_700_000_000_000)

	tests := []struct {
		name string
		raw  string
		want recordState
	}{
		{
			name: "live with future expiry",
			raw:  `{"data":"v","addedAt":1699999990000,"expiresAt":1700003600000}`,
			want: recordLive,
		},
		{
			name: "live forever",
			raw:  `{"data":{"a":1},"addedAt":1699999990000,"expiresAt":null}`,
			want: recordLive,
		},
		{
			name: "expired exactly at now",
			raw:  `{"data":"v","addedAt":1,"expiresAt":1700000000000}`,
			want: recordExpired,
		},
		{
			name: "expired in the past",
			raw:  `{"data":"v","addedAt":1,"expiresAt":2}`,
			want: recordExpired,
		},
		{
			name: "not json at all",
			raw:  `{{{nope`,
			want: recordCorrupt,
		},
		{
			name: "addedAt is a string",
			raw:  `{"data":"v","addedAt":"yesterday","expiresAt":null}`,
			want: recordCorrupt,
		},
		{
			name: "addedAt missing",
			raw:  `{"data":"v","expiresAt":null}`,
			want: recordCorrupt,
		},
		{
			name: "expiresAt is a string",
			raw:  `{"data":"v","addedAt":1,"expiresAt":"soon"}`,
			want: recordCorrupt,
		},
		{
			name: "expiresAt missing",
			raw:  `{"data":"v","addedAt":1}`,
			want: recordCorrupt,
		},
		{
			name: "data missing",
			raw:  `{"addedAt":1,"expiresAt":null}`,
			want: recordCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, state := decodeRecord([]byte(tt.raw), now)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestDecodeRecord_PreservesFields(t *testing.T) {
	raw := []byte(`{"data":["a","b"],"addedAt":123,"expiresAt":456789}`)

	rec, state := decodeRecord(raw, 100)
	require.Equal(t, recordLive, state)
	assert.Equal(t, int64(123), rec.AddedAt)
	require.NotNil(t, rec.ExpiresAt)
	assert.Equal(t, int64(456789), *rec.ExpiresAt)
	assert.JSONEq(t, `["a","b"]`, string(rec.Data))
}

func TestEncodeRecord_RoundTrip(t *testing.T) {
	expires := int64(2_000_000_000_000)

	raw, err := encodeRecord(map[string]any{"x": 1}, 1_000, &expires)
	require.NoError(t, err)

	rec, state := decodeRecord(raw, 999_999)
	require.Equal(t, recordLive, state)
	assert.Equal(t, int64(1_000), rec.AddedAt)
	require.NotNil(t, rec.ExpiresAt)
	assert.Equal(t, expires, *rec.ExpiresAt)
	assert.JSONEq(t, `{"x":1}`, string(rec.Data))
}

func TestEncodeRecord_NoExpiryMarshalsNull(t *testing.T) {
	raw, err := encodeRecord("v", 42, nil)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"expiresAt":null`)

	rec, state := decodeRecord(raw, 9_999_999_999_999)
	assert.Equal(t, recordLive, state)
	assert.Nil(t, rec.ExpiresAt)
}

func TestEncodeRecord_UnencodableData(t *testing.T) {
	_, err := encodeRecord(func() {}, 1, nil)
	assert.Error(t, err)
}
