package models

import (
	"encoding/json"
	"fmt"
)

// CacheSchemaVersion is bumped whenever the layout of any cached value
// changes. Readers reject blobs written under a different schema instead of
// guessing at their shape.
const CacheSchemaVersion = 1

// CacheValueKind tags what a cached blob decodes to.
type CacheValueKind string

const (
	CacheKindRollup    CacheValueKind = "rollup"
	CacheKindBreakdown CacheValueKind = "breakdown"
	CacheKindPage      CacheValueKind = "page"
)

// CacheEnvelope is the versioned wrapper every cache value is stored under.
type CacheEnvelope struct {
	Schema int             `json:"schema"`
	Kind   CacheValueKind  `json:"kind"`
	Data   json.RawMessage `json:"data"`
}

// EncodeCacheValue wraps data in a versioned envelope and serializes it.
func EncodeCacheValue(kind CacheValueKind, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache data: %w", err)
	}
	blob, err := json.Marshal(CacheEnvelope{
		Schema: CacheSchemaVersion,
		Kind:   kind,
		Data:   raw,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache envelope: %w", err)
	}
	return blob, nil
}

// DecodeCacheValue unwraps a cached blob, verifying schema version and kind.
// The returned raw message is the inner payload.
func DecodeCacheValue(blob []byte, wantKind CacheValueKind) (json.RawMessage, error) {
	var env CacheEnvelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache envelope: %w", err)
	}
	if env.Schema != CacheSchemaVersion {
		return nil, fmt.Errorf("unsupported cache schema version: %d", env.Schema)
	}
	if env.Kind != wantKind {
		return nil, fmt.Errorf("unexpected cache value kind: got %q, want %q", env.Kind, wantKind)
	}
	return env.Data, nil
}
