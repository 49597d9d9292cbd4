// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package session

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=store.go -destination=mocks/mock_store.go -package=mocks Store

import "context"

// Store reports whether an OAuth token belongs to a live session.
// It is the capability mobilesso delegates to when verifying the
// oauth_token carried by a success redirect; the surrounding application
// owns session creation, persistence, and expiry.
//
// Implementations may perform I/O. Timeout and cancellation policy belongs
// to the caller via ctx; implementations must not retry internally.
type Store interface {
	// IsValidOAuthToken returns true if token identifies a live session.
	// A non-nil error indicates the store could not be consulted; callers
	// must treat that as verification failure, not as validity.
	IsValidOAuthToken(ctx context.Context, token string) (bool, error)
}
