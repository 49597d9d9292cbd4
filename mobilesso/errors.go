// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mobilesso

import "errors"

// Validation errors for validator construction.
var (
	// ErrMissingConsumerKey indicates the consumer key is empty.
	ErrMissingConsumerKey = errors.New("missing consumer key")

	// ErrMissingConsumerSecret indicates the consumer secret is empty.
	ErrMissingConsumerSecret = errors.New("missing consumer secret")
)
