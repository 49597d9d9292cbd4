// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package param provides security-focused validation for parameters parsed out of
SSO redirect URLs.

Redirect URLs are produced by an external application and must be treated as
hostile input. Parameter values flow into session-store keys and structured log
fields, so this package rejects control characters (preventing CRLF log forging
and protocol injection) and enforces length limits before a value is used.

# Usage

	if err := param.ValidateValue(token); err != nil {
		// Treat the token as invalid; do not use it as a store key
	}

The validators check for:
  - CRLF injection attempts (\r\n sequences)
  - Control characters
  - RFC 7230 token compliance for parameter names
  - Length limits to prevent DoS (256 bytes for names, 4096 for values)
*/
package param
