// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_AddAndLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Add("token-abc", 0))

	ok, err := store.IsValidOAuthToken(ctx, "token-abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsValidOAuthToken(ctx, "token-unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Add("token-abc", 0))
	store.Remove("token-abc")

	ok, err := store.IsValidOAuthToken(ctx, "token-abc")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an unknown token is a no-op
	store.Remove("token-never-added")
}

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemory()

	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Add("token-short", time.Minute))
	require.NoError(t, store.Add("token-forever", 0))

	ok, err := store.IsValidOAuthToken(ctx, "token-short")
	require.NoError(t, err)
	assert.True(t, ok, "token should be valid before expiry")

	now = now.Add(2 * time.Minute)

	ok, err = store.IsValidOAuthToken(ctx, "token-short")
	require.NoError(t, err)
	assert.False(t, ok, "token should be invalid after expiry")

	ok, err = store.IsValidOAuthToken(ctx, "token-forever")
	require.NoError(t, err)
	assert.True(t, ok, "zero ttl token must not expire")

	// Expired token is garbage-collected on lookup
	assert.Equal(t, 1, store.Len())
}

func TestMemory_RejectsMalformedTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemory()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"crlf injection", "token\r\nforged"},
		{"null byte", "tok\x00en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Error(t, store.Add(tt.token, 0))

			ok, err := store.IsValidOAuthToken(ctx, tt.token)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}
