// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package securerand abstracts access to a cryptographically secure random
// source behind a small interface so that components which consume randomness
// (such as nonce generation in mobilesso) can be tested deterministically and
// can observe random-source failures instead of panicking.
//
// The production implementation is [OSSource], backed by crypto/rand.
package securerand
