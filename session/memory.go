// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stacklok/ssokit-core/validation/param"
)

// Memory is an in-process Store implementation backed by a map with
// per-token expiry. It is intended for single-instance applications and
// tests; multi-instance deployments should use the redisstore package.
//
// Memory is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	tokens map[string]time.Time

	// now is replaced in tests to exercise expiry without sleeping.
	now func() time.Time
}

// NewMemory creates an empty in-memory session store.
func NewMemory() *Memory {
	return &Memory{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Add records token as belonging to a live session. A zero ttl means the
// token does not expire until removed. Tokens containing control characters
// or exceeding the parameter length limit are rejected.
func (m *Memory) Add(token string, ttl time.Duration) error {
	if err := param.ValidateValue(token); err != nil {
		return fmt.Errorf("invalid oauth token: %w", err)
	}

	var expiry time.Time
	if ttl > 0 {
		expiry = m.now().Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = expiry
	return nil
}

// Remove forgets token. Removing an unknown token is a no-op.
func (m *Memory) Remove(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
}

// IsValidOAuthToken implements Store. Expired tokens are treated as invalid;
// they are garbage-collected lazily on lookup.
func (m *Memory) IsValidOAuthToken(_ context.Context, token string) (bool, error) {
	if param.ValidateValue(token) != nil {
		return false, nil
	}

	m.mu.RLock()
	expiry, ok := m.tokens[token]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if !expiry.IsZero() && m.now().After(expiry) {
		m.mu.Lock()
		delete(m.tokens, token)
		m.mu.Unlock()
		return false, nil
	}
	return true, nil
}

// Len returns the number of tokens currently held, including any that have
// expired but not yet been looked up.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tokens)
}
