// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package redisstore provides a Redis-backed session store for deployments
// where session state is shared across application instances.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stacklok/ssokit-core/logger"
	"github.com/stacklok/ssokit-core/validation/param"
)

// DefaultKeyPrefix namespaces session keys so the store can share a Redis
// database with other application data.
const DefaultKeyPrefix = "ssokit:session:"

// Store implements session.Store against Redis. Each live token is a key
// with Redis-managed expiry, so expired sessions disappear without a
// cleanup pass.
type Store struct {
	client    redis.UniversalClient
	keyPrefix string
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.keyPrefix = prefix
	}
}

// New creates a Store on top of an existing Redis client. The caller owns
// the client's lifecycle.
func New(client redis.UniversalClient, opts ...Option) *Store {
	s := &Store{
		client:    client,
		keyPrefix: DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add records token as belonging to a live session. A zero ttl means the
// token does not expire until removed.
func (s *Store) Add(ctx context.Context, token string, ttl time.Duration) error {
	if err := param.ValidateValue(token); err != nil {
		return fmt.Errorf("invalid oauth token: %w", err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("storing session token: %w", err)
	}
	return nil
}

// Remove forgets token. Removing an unknown token is a no-op.
func (s *Store) Remove(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("removing session token: %w", err)
	}
	return nil
}

// IsValidOAuthToken implements session.Store. Tokens that fail parameter
// validation are reported invalid without touching Redis; they cannot have
// been stored by Add and must not reach the wire as keys.
func (s *Store) IsValidOAuthToken(ctx context.Context, token string) (bool, error) {
	if err := param.ValidateValue(token); err != nil {
		logger.Debugw("rejecting malformed oauth token", "error", err)
		return false, nil
	}

	n, err := s.client.Exists(ctx, s.keyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("session lookup: %w", err)
	}
	return n > 0, nil
}
