//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"coupon-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 8, 1, 12, 30, 45, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(at, id)

	decodedAt, decodedID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, decodedID)
	assert.True(t, at.Equal(decodedAt), "expected %v, got %v", at, decodedAt)
}

func TestCursor_DecodeRejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "empty string", cursor: ""},
		{name: "not base64url", cursor: "!!!not-base64!!!"},
		{name: "missing version prefix", cursor: base64.URLEncoding.EncodeToString([]byte("1700000000-" + uuid.NewString()))},
		{name: "unknown version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:1700000000-" + uuid.NewString()))},
		{name: "missing uuid part", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1700000000"))},
		{name: "non-numeric timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "invalid uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1700000000-not-a-uuid"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "zero falls back to default", limit: 0, expected: 20},
		{name: "negative falls back to default", limit: -5, expected: 20},
		{name: "in-range value kept", limit: 50, expected: 50},
		{name: "max kept", limit: queries.MaxListLimit, expected: queries.MaxListLimit},
		{name: "above max clamped", limit: queries.MaxListLimit + 1, expected: queries.MaxListLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, queries.ValidateLimit(tc.limit))
		})
	}
}
