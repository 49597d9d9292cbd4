// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package param provides validation functions for untrusted redirect URL parameters.
package param

import (
	"fmt"

	"golang.org/x/net/http/httpguts"
)

// Parameter size limits. Redirect URLs arrive from an external application
// and their parameters end up as store keys and log fields, so both sides
// are bounded to prevent abuse.
const (
	// MaxNameLength is the maximum accepted length for a parameter name.
	MaxNameLength = 256

	// MaxValueLength is the maximum accepted length for a parameter value.
	// OAuth tokens and nonces are well under this limit.
	MaxValueLength = 4096
)

// ValidateName validates that a string is usable as a redirect parameter name.
// It rejects empty names, oversized names, and names containing characters
// outside the RFC 7230 token set, which also rules out CRLF injection.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("parameter name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("parameter name exceeds maximum length of %d bytes", MaxNameLength)
	}

	// Same token validation Go's HTTP/2 implementation applies to header names
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid parameter name: contains invalid characters")
	}

	return nil
}

// ValidateValue validates that a string is usable as a redirect parameter value,
// in particular as a session-store key or a structured log field.
// It rejects empty values, oversized values, and values containing control
// characters (including CR and LF, preventing log forging).
func ValidateValue(value string) error {
	if value == "" {
		return fmt.Errorf("parameter value cannot be empty")
	}

	if len(value) > MaxValueLength {
		return fmt.Errorf("parameter value exceeds maximum length of %d bytes", MaxValueLength)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid parameter value: contains control characters")
	}

	return nil
}
