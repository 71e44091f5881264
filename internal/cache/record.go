// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// record is the on-disk shape of one cached document. Timestamps are epoch
// milliseconds; a nil ExpiresAt marshals to null and means "never expires".
type record struct {
	Data      json.RawMessage `json:"data"`
	AddedAt   int64           `json:"addedAt"`
	ExpiresAt *int64          `json:"expiresAt"`
}

// recordState classifies the outcome of validating raw on-disk bytes.
type recordState int

const (
	recordLive recordState = iota
	recordExpired
	recordCorrupt
)

// decodeRecord validates untrusted on-disk bytes and classifies them as
// live, expired, or corrupt relative to now (epoch ms). The record bytes
// came from disk and can't be trusted, so the bookkeeping fields are probed
// by type before anything is believed: addedAt must be a number, expiresAt
// a number or null, and data must be present. Pure; the decision to delete
// a corrupt file belongs to the caller.
func decodeRecord(raw []byte, now int64) (record, recordState) {
	if !gjson.ValidBytes(raw) {
		return record{}, recordCorrupt
	}

	doc := gjson.ParseBytes(raw)

	added := doc.Get("addedAt")
	if added.Type != gjson.Number {
		return record{}, recordCorrupt
	}

	// A missing key also probes as gjson.Null, so presence is checked
	// separately: expiresAt must be there, as a number or a literal null.
	expires := doc.Get("expiresAt")
	if !expires.Exists() || (expires.Type != gjson.Number && expires.Type != gjson.Null) {
		return record{}, recordCorrupt
	}

	data := doc.Get("data")
	if !data.Exists() {
		return record{}, recordCorrupt
	}

	rec := record{
		Data:    json.RawMessage(data.Raw),
		AddedAt: added.Int(),
	}
	if expires.Type == gjson.Number {
		at := expires.Int()
		rec.ExpiresAt = &at
	}

	if rec.ExpiresAt != nil && *rec.ExpiresAt <= now {
		return rec, recordExpired
	}
	return rec, recordLive
}

// encodeRecord serializes data into record bytes. The data marshal is the
// only step that can fail; callers treat that as a write fault.
func encodeRecord(data any, addedAt int64, expiresAt *int64) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache data: %w", err)
	}
	out, err := json.Marshal(record{Data: raw, AddedAt: addedAt, ExpiresAt: expiresAt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache record: %w", err)
	}
	return out, nil
}

// decodeData unmarshals the stored document, falling back on the rare case
// of undecodable bytes that slipped past validation.
func decodeData(raw json.RawMessage, fallback any) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}
