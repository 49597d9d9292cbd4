// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package autherr provides error types carrying machine-readable redirect
// verification failure reasons for security logging and telemetry.
package autherr

import (
	"errors"
)

// Reason identifies why a redirect failed verification. Values are stable
// strings intended for structured logs and metrics labels.
type Reason string

// Verification failure reasons.
const (
	// ReasonUnrecognized indicates the redirect URL matched neither the
	// success nor the cancel form for the expected scheme.
	ReasonUnrecognized Reason = "unrecognized_redirect"

	// ReasonNonceMismatch indicates the identifier parameter was absent or
	// did not match the nonce issued with the outbound request.
	ReasonNonceMismatch Reason = "identifier_mismatch"

	// ReasonTokenInvalid indicates the session store rejected the oauth_token
	// carried by the redirect.
	ReasonTokenInvalid Reason = "invalid_oauth_token"

	// ReasonPolicyRejected indicates a host-supplied accept policy evaluated
	// to false for the redirect.
	ReasonPolicyRejected Reason = "policy_rejected"

	// ReasonPolicyError indicates a host-supplied accept policy failed to
	// evaluate.
	ReasonPolicyError Reason = "policy_error"

	// ReasonUnknown is returned by Classify for errors that carry no reason.
	ReasonUnknown Reason = "unknown"
)

// ReasonedError wraps an error with a verification failure reason.
// This allows errors to carry their failure classification through the call
// stack, enabling centralized handling and logging at the caller.
type ReasonedError struct {
	err    error
	reason Reason
}

// Error implements the error interface.
func (e *ReasonedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *ReasonedError) Unwrap() error {
	return e.err
}

// Reason returns the failure reason associated with this error.
func (e *ReasonedError) Reason() Reason {
	return e.reason
}

// WithReason wraps an error with a verification failure reason.
// The returned error implements Unwrap() for use with errors.Is() and errors.As().
// If err is nil, WithReason returns nil.
func WithReason(err error, reason Reason) error {
	if err == nil {
		return nil
	}
	return &ReasonedError{err: err, reason: reason}
}

// Classify extracts the failure reason from an error.
// It unwraps the error chain looking for a ReasonedError.
// If no ReasonedError is found, it returns ReasonUnknown.
func Classify(err error) Reason {
	if err == nil {
		return ""
	}

	var reasoned *ReasonedError
	if errors.As(err, &reasoned) {
		return reasoned.reason
	}

	return ReasonUnknown
}

// New creates a new error with the given message and failure reason.
// This is a convenience function equivalent to WithReason(errors.New(message), reason).
func New(message string, reason Reason) error {
	return &ReasonedError{err: errors.New(message), reason: reason}
}
