// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mobilesso

import (
	"net/url"
)

// inboundRedirect is the decomposed form of an untrusted redirect URL.
type inboundRedirect struct {
	// scheme as parsed; net/url lowercases it, which gives the
	// case-insensitive comparison the authorization server requires.
	scheme string

	// params is the parameter mapping extracted from the payload. Keys are
	// unique; on duplicates the host-encoded value wins over the query.
	params map[string]string

	// hasPayload is true when the URL carries anything after its scheme,
	// in either the host or the query position. A cancel redirect has no
	// payload at all.
	hasPayload bool
}

// parseInbound decomposes a redirect URL without judging it against any
// particular validator. Returns false for URLs that are empty, oversized,
// or unparseable.
//
// Native SSO redirects come in two spellings: the host-encoded form
// "scheme://k=v&k2=v2", where platform URL APIs surface the parameter string
// as the host component, and the conventional query form "scheme://?k=v".
// Both are accepted and merged into one mapping.
func parseInbound(rawURL string) (inboundRedirect, bool) {
	if rawURL == "" || len(rawURL) > MaxRedirectURLLength {
		return inboundRedirect{}, false
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return inboundRedirect{}, false
	}

	in := inboundRedirect{
		scheme:     u.Scheme,
		params:     make(map[string]string),
		hasPayload: u.Host != "" || u.RawQuery != "",
	}

	// Query first so host-encoded values win on duplicate keys.
	mergeQueryString(in.params, u.RawQuery)
	mergeQueryString(in.params, u.Host)

	return in, true
}

// mergeQueryString parses raw as a URL query string and folds it into dst,
// keeping the first value of repeated keys. Pairs that fail percent-decoding
// are dropped; the rest of the string is still used.
func mergeQueryString(dst map[string]string, raw string) {
	if raw == "" {
		return
	}

	values, _ := url.ParseQuery(raw)
	for key, vals := range values {
		if len(vals) > 0 {
			dst[key] = vals[0]
		} else {
			dst[key] = ""
		}
	}
}
