// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package session defines the session-store capability consulted during SSO
redirect verification, plus an in-process implementation.

The mobilesso package never inspects OAuth tokens itself; it extracts the
oauth_token parameter from a success redirect and asks a [Store] whether that
token identifies a live session. How sessions come to exist is the host
application's concern.

# Implementations

[Memory] keeps tokens in a map with per-token expiry, suitable for
single-instance applications and tests. The redisstore sub-package provides a
Redis-backed store for deployments where session state is shared across
instances.

# Testing

A generated gomock mock for [Store] is available in the mocks sub-package:

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().IsValidOAuthToken(gomock.Any(), "token-123").Return(true, nil)
*/
package session
