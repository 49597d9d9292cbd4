// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mobilesso

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ory/fosite"
)

// CallbackURIPolicy controls which URI schemes are accepted during callback URI validation.
type CallbackURIPolicy int

const (
	// CallbackURIPolicyStrict allows only https and http-loopback schemes,
	// following RFC 8252 Section 8.4 strict security recommendations. This
	// rejects every scheme this package derives from a consumer key; it
	// exists for hosts that route the callback through a web endpoint
	// instead of a private-use scheme.
	CallbackURIPolicyStrict CallbackURIPolicy = iota

	// CallbackURIPolicyAllowPrivateSchemes also allows private-use URI
	// schemes (e.g., twitterkit-abc123://) per RFC 8252 Section 7.1. This
	// is the policy the validator applies to its own derived callback,
	// since custom-scheme redirects are the whole point of the exchange.
	CallbackURIPolicyAllowPrivateSchemes
)

// ValidateCallbackURI validates a callback URI per RFC 6749 Section 3.1.2 and RFC 8252.
// The policy parameter controls whether private-use URI schemes are accepted.
//
// Validation rules applied:
//   - URI must not exceed MaxRedirectURLLength (DoS protection)
//   - URI must be an absolute URI with a scheme (RFC 6749 Section 3.1.2)
//   - URI must not contain a fragment component (RFC 6749 Section 3.1.2)
//   - Scheme security per policy:
//   - Strict: only https or http-loopback (RFC 8252 Section 8.4)
//   - AllowPrivateSchemes: also allows private-use schemes (RFC 8252 Section 7.1)
func ValidateCallbackURI(uri string, policy CallbackURIPolicy) error {
	if len(uri) > MaxRedirectURLLength {
		return fmt.Errorf("callback URI too long (maximum %d characters)", MaxRedirectURLLength)
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid callback URI format: %w", err)
	}

	// RFC 6749 Section 3.1.2: must be absolute URI without fragment
	if !fosite.IsValidRedirectURI(parsed) {
		return fmt.Errorf("callback URI must be an absolute URI without a fragment")
	}

	switch policy {
	case CallbackURIPolicyStrict:
		if !fosite.IsRedirectURISecureStrict(context.Background(), parsed) {
			return fmt.Errorf("callback URI must use http (for loopback) or https scheme")
		}
	case CallbackURIPolicyAllowPrivateSchemes:
		if !fosite.IsRedirectURISecure(context.Background(), parsed) {
			return fmt.Errorf("callback URI must use a secure scheme (https, http for loopback, or a private-use scheme)")
		}
	default:
		return fmt.Errorf("unknown callback URI policy: %d", policy)
	}

	return nil
}
