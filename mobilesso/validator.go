// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mobilesso

import (
	"context"
	"net/url"
	"strings"

	"github.com/stacklok/ssokit-core/appconfig"
	"github.com/stacklok/ssokit-core/autherr"
	"github.com/stacklok/ssokit-core/logger"
	"github.com/stacklok/ssokit-core/policy"
	"github.com/stacklok/ssokit-core/securerand"
	"github.com/stacklok/ssokit-core/session"
)

// AuthConfig identifies the calling application to the authorization
// application. Both fields are required.
type AuthConfig struct {
	ConsumerKey    string
	ConsumerSecret string
}

// State is the lifecycle state of a RedirectValidator.
type State int

const (
	// StatePending means no redirect has been recognized yet.
	StatePending State = iota

	// StateResolved means a redirect has been classified as success or
	// cancel. The validator's job is done and the instance should be
	// discarded by the caller.
	StateResolved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	default:
		return "invalid"
	}
}

// Outcome is the result of resolving an inbound redirect.
type Outcome int

const (
	// OutcomeUnknown means the redirect was not recognized or failed
	// verification; the accompanying error carries the reason.
	OutcomeUnknown Outcome = iota

	// OutcomeSuccess means the redirect is a verified success callback.
	OutcomeSuccess

	// OutcomeCancel means the user abandoned the authorization flow.
	OutcomeCancel
)

type options struct {
	schemePrefix string
	endpoint     string
	randSource   securerand.Source
	acceptPolicy *policy.Policy
}

// Option configures a RedirectValidator at construction.
type Option func(*options)

// WithSchemePrefix overrides DefaultSchemePrefix for deriving the callback
// scheme.
func WithSchemePrefix(prefix string) Option {
	return func(o *options) {
		o.schemePrefix = prefix
	}
}

// WithAuthEndpoint overrides TwitterAuthEndpoint as the base of the outbound
// authorization URL.
func WithAuthEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithRandomSource overrides the OS random source used for nonce generation.
func WithRandomSource(src securerand.Source) Option {
	return func(o *options) {
		o.randSource = src
	}
}

// WithAcceptPolicy attaches a compiled accept policy that Resolve evaluates
// against success redirects after the built-in checks pass.
func WithAcceptPolicy(p *policy.Policy) Option {
	return func(o *options) {
		o.acceptPolicy = p
	}
}

// RedirectValidator binds one outbound authorization request to its eventual
// inbound redirect. Create one validator per authorization attempt and
// discard it once a redirect has been resolved.
//
// A validator is not safe for concurrent use; the single-attempt usage
// pattern has exactly one goroutine driving it.
type RedirectValidator struct {
	config         AuthConfig
	redirectScheme string
	nonce          string
	authURL        string
	acceptPolicy   *policy.Policy
	state          State
}

// NewRedirectValidator derives the callback scheme from the consumer key,
// generates the request-binding nonce, and builds the outbound authorization
// URL.
//
// Nonce generation failure is not fatal: the validator is still returned,
// the outbound URL omits the identifier parameter, and VerifyNonce degrades
// to a vacuous pass. The failure is logged; callers that want a hard
// guarantee must check Nonce() for emptiness themselves.
func NewRedirectValidator(config AuthConfig, opts ...Option) (*RedirectValidator, error) {
	if config.ConsumerKey == "" {
		return nil, ErrMissingConsumerKey
	}
	if config.ConsumerSecret == "" {
		return nil, ErrMissingConsumerSecret
	}

	o := &options{
		schemePrefix: DefaultSchemePrefix,
		endpoint:     TwitterAuthEndpoint,
		randSource:   securerand.OSSource{},
	}
	for _, opt := range opts {
		opt(o)
	}

	v := &RedirectValidator{
		config:         config,
		redirectScheme: o.schemePrefix + "-" + config.ConsumerKey,
		acceptPolicy:   o.acceptPolicy,
	}

	nonce, err := securerand.String(o.randSource, NonceLength)
	if err != nil {
		// Deliberate relaxation: an absent nonce disables the identifier
		// check rather than aborting the attempt.
		logger.Warnw("nonce generation failed, identifier check disabled for this attempt",
			"error", err)
	} else {
		v.nonce = nonce
	}

	if err := ValidateCallbackURI(v.redirectScheme+"://", CallbackURIPolicyAllowPrivateSchemes); err != nil {
		logger.Warnw("derived callback URI fails redirect URI validation",
			"scheme", v.redirectScheme, "error", err)
	}

	v.authURL = buildAuthorizationURL(o.endpoint, config, v.redirectScheme, v.nonce)
	return v, nil
}

// buildAuthorizationURL is a pure function of the validator's construction
// inputs. url.Values.Encode sorts keys, so the output is deterministic.
func buildAuthorizationURL(endpoint string, config AuthConfig, redirectScheme, nonce string) string {
	q := url.Values{}
	q.Set(ParamConsumerKey, config.ConsumerKey)
	q.Set(ParamConsumerSecret, config.ConsumerSecret)
	q.Set(ParamOAuthCallback, redirectScheme)
	if nonce != "" {
		q.Set(ParamIdentifier, nonce)
	}
	return endpoint + "?" + q.Encode()
}

// AuthorizationURL returns the outbound authorization URL built at
// construction.
func (v *RedirectValidator) AuthorizationURL() string {
	return v.authURL
}

// RedirectScheme returns the callback scheme derived from the consumer key,
// regardless of whether the host application registered it. Use
// ResolveRedirectScheme for the effective scheme.
func (v *RedirectValidator) RedirectScheme() string {
	return v.redirectScheme
}

// Nonce returns the identifier nonce generated at construction. It is empty
// when the random source failed, and stable across reads otherwise.
func (v *RedirectValidator) Nonce() string {
	return v.nonce
}

// State returns the validator's lifecycle state.
func (v *RedirectValidator) State() State {
	return v.state
}

// ClassifySuccess reports whether rawURL is a success redirect for this
// attempt: the scheme matches (case-insensitively) and the payload carries
// all of secret, token, username, and identifier. Parameter values are not
// inspected; verification is a separate step.
func (v *RedirectValidator) ClassifySuccess(rawURL string) bool {
	in, ok := v.parseMatching(rawURL)
	if !ok {
		return false
	}
	for _, name := range successParams {
		if _, ok := in.params[name]; !ok {
			return false
		}
	}
	v.state = StateResolved
	return true
}

// ClassifyCancel reports whether rawURL is a cancel redirect for this
// attempt: the scheme matches (case-insensitively) and the URL carries no
// payload. A redirect that matches neither ClassifySuccess nor
// ClassifyCancel is unrecognized, not an error.
func (v *RedirectValidator) ClassifyCancel(rawURL string) bool {
	in, ok := v.parseMatching(rawURL)
	if !ok || in.hasPayload {
		return false
	}
	v.state = StateResolved
	return true
}

// VerifyNonce reports whether rawURL echoes the identifier nonce issued with
// the outbound request. The comparison is byte-exact and an absent parameter
// fails.
//
// When the stored nonce is empty (nonce generation failed at construction)
// the check passes vacuously for any URL. That is a deliberate relaxation
// for callers that cannot send a nonce, not a security feature.
func (v *RedirectValidator) VerifyNonce(rawURL string) bool {
	if v.nonce == "" {
		return true
	}
	in, ok := parseInbound(rawURL)
	if !ok {
		return false
	}
	echoed, ok := in.params[ParamIdentifier]
	return ok && echoed == v.nonce
}

// VerifyOAuthToken extracts the oauth_token parameter from rawURL and asks
// store whether it identifies a live session. Store errors are logged and
// reported as invalid. Timeout and cancellation policy belongs to the caller
// via ctx.
func (v *RedirectValidator) VerifyOAuthToken(ctx context.Context, rawURL string, store session.Store) bool {
	in, ok := parseInbound(rawURL)
	if !ok {
		return false
	}
	token, ok := in.params[ParamOAuthToken]
	if !ok {
		return false
	}

	valid, err := store.IsValidOAuthToken(ctx, token)
	if err != nil {
		logger.Warnw("session store lookup failed during redirect verification", "error", err)
		return false
	}
	return valid
}

// ResolveRedirectScheme returns the derived callback scheme if the host
// application registered it, and DefaultRedirectScheme otherwise. Some host
// applications ship without registering the expected custom scheme; the
// exchange still needs some usable redirect target.
func (v *RedirectValidator) ResolveRedirectScheme(cfg appconfig.Config) string {
	if appconfig.HasScheme(cfg, v.redirectScheme) {
		return v.redirectScheme
	}
	logger.Warnw("derived redirect scheme is not registered by the host application, using fallback",
		"derived", v.redirectScheme, "fallback", DefaultRedirectScheme)
	return DefaultRedirectScheme
}

// Resolve classifies rawURL and, for a success redirect, runs the full
// verification chain: nonce, session-store token check, and the optional
// accept policy. The returned error is nil for OutcomeSuccess and
// OutcomeCancel; otherwise it carries an autherr reason for logging.
//
// A nil store skips the token check; pass one whenever a session store is
// available.
func (v *RedirectValidator) Resolve(ctx context.Context, rawURL string, store session.Store) (Outcome, error) {
	if v.ClassifyCancel(rawURL) {
		return OutcomeCancel, nil
	}
	if !v.ClassifySuccess(rawURL) {
		return OutcomeUnknown, autherr.New("unrecognized redirect URL", autherr.ReasonUnrecognized)
	}
	if !v.VerifyNonce(rawURL) {
		return OutcomeUnknown, autherr.New("redirect identifier does not match the issued nonce", autherr.ReasonNonceMismatch)
	}
	if store != nil && !v.VerifyOAuthToken(ctx, rawURL, store) {
		return OutcomeUnknown, autherr.New("oauth token rejected by the session store", autherr.ReasonTokenInvalid)
	}

	if v.acceptPolicy != nil {
		in, _ := parseInbound(rawURL)
		accepted, err := v.acceptPolicy.Evaluate(in.scheme, in.params)
		if err != nil {
			return OutcomeUnknown, autherr.WithReason(err, autherr.ReasonPolicyError)
		}
		if !accepted {
			return OutcomeUnknown, autherr.New("redirect rejected by accept policy", autherr.ReasonPolicyRejected)
		}
	}

	return OutcomeSuccess, nil
}

// parseMatching parses rawURL and requires its scheme to match the
// validator's callback scheme.
func (v *RedirectValidator) parseMatching(rawURL string) (inboundRedirect, bool) {
	in, ok := parseInbound(rawURL)
	if !ok || !strings.EqualFold(in.scheme, v.redirectScheme) {
		return inboundRedirect{}, false
	}
	return in, true
}
