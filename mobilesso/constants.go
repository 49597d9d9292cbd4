// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mobilesso

// Endpoints and schemes used by the custom-URL-scheme SSO exchange.
const (
	// TwitterAuthEndpoint is the custom-scheme URL that opens the native
	// Twitter application's authorization screen. The outbound request is
	// this endpoint plus a query string carrying the caller's credentials
	// and callback scheme.
	TwitterAuthEndpoint = "twitterauth://authorize"

	// DefaultSchemePrefix is prepended to the consumer key when deriving
	// the callback scheme, giving each consuming application a distinct
	// private-use URI scheme per RFC 8252 Section 7.1.
	DefaultSchemePrefix = "twitterkit"

	// DefaultRedirectScheme is the documented fallback callback scheme.
	// It is returned by ResolveRedirectScheme when the host application
	// never registered the scheme derived from its consumer key, so the
	// exchange still has a usable redirect target.
	DefaultRedirectScheme = "twittersdk"
)

// NonceLength is the number of cryptographically random bytes drawn for the
// identifier nonce. 32 bytes provides 256 bits of entropy, enough to bind an
// outbound request to its redirect even across many concurrent flows.
const NonceLength = 32

// MaxRedirectURLLength is the maximum accepted length for inbound and
// outbound redirect URLs. This limit provides DoS protection during URL
// parsing per RFC 3986 practical constraints.
const MaxRedirectURLLength = 2048

// Query parameters of the outbound authorization URL.
const (
	// ParamConsumerKey identifies the calling application.
	ParamConsumerKey = "consumer_key"

	// ParamConsumerSecret authenticates the calling application.
	ParamConsumerSecret = "consumer_secret"

	// ParamOAuthCallback names the callback scheme the authorization
	// application must redirect back to.
	ParamOAuthCallback = "oauth_callback"

	// ParamIdentifier carries the request-binding nonce. It is present on
	// the outbound URL only when nonce generation succeeded, and echoed
	// back on the success redirect.
	ParamIdentifier = "identifier"
)

// Parameters of the inbound success redirect.
const (
	// ParamSecret is the OAuth token secret issued for the session.
	ParamSecret = "secret"

	// ParamToken is the OAuth token issued for the session.
	ParamToken = "token"

	// ParamUsername is the authenticated user's screen name.
	ParamUsername = "username"

	// ParamOAuthToken is the token checked against the session store during
	// verification.
	ParamOAuthToken = "oauth_token"
)

// successParams are the parameters whose presence defines a success redirect.
// Values are not inspected during classification.
var successParams = []string{ParamSecret, ParamToken, ParamUsername, ParamIdentifier}
