// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/ssokit-core/session"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return New(client, opts...), srv
}

func TestStore_AddAndLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Add(ctx, "token-abc", 0))

	ok, err := store.IsValidOAuthToken(ctx, "token-abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsValidOAuthToken(ctx, "token-unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, srv := newTestStore(t)

	require.NoError(t, store.Add(ctx, "token-short", time.Minute))

	ok, err := store.IsValidOAuthToken(ctx, "token-short")
	require.NoError(t, err)
	assert.True(t, ok, "token should be valid before expiry")

	srv.FastForward(2 * time.Minute)

	ok, err = store.IsValidOAuthToken(ctx, "token-short")
	require.NoError(t, err)
	assert.False(t, ok, "token should be invalid after Redis expiry")
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Add(ctx, "token-abc", 0))
	require.NoError(t, store.Remove(ctx, "token-abc"))

	ok, err := store.IsValidOAuthToken(ctx, "token-abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remove(ctx, "token-never-added"))
}

func TestStore_KeyPrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, srv := newTestStore(t, WithKeyPrefix("custom:"))

	require.NoError(t, store.Add(ctx, "token-abc", 0))
	assert.True(t, srv.Exists("custom:token-abc"))
	assert.False(t, srv.Exists(DefaultKeyPrefix+"token-abc"))
}

func TestStore_RejectsMalformedTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

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

			assert.Error(t, store.Add(ctx, tt.token, 0))

			ok, err := store.IsValidOAuthToken(ctx, tt.token)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_SurfacesBackendErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	store := New(client)

	srv.Close()
	require.NoError(t, client.Close())

	_, err := store.IsValidOAuthToken(ctx, "token-abc")
	assert.Error(t, err)
}

// TestStore_InterfaceCompliance ensures Store implements session.Store
func TestStore_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ session.Store = (*Store)(nil)
	// If this compiles, the test passes
}
