// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package policy provides CEL-based accept policies for SSO redirects.

Scheme matching, nonce verification, and token validation are fixed checks
owned by the mobilesso package. Some host applications additionally want their
own acceptance rules, such as requiring a non-empty username or pinning the
exact callback scheme. Rather than growing the validator's API for each such
rule, this package lets hosts express them as CEL expressions evaluated
against the classified redirect.

Expressions see two variables:

  - scheme (string): the inbound redirect's URL scheme
  - params (map<string, string>): the redirect's parameter mapping

For example:

	p, err := policy.Compile(`params["username"] != ""`)
	if err != nil {
	    // reject the configuration
	}
	ok, err := p.Evaluate("twitterkit-abc123", map[string]string{"username": "jack"})

Policies are compiled once and are safe for concurrent evaluation. Expression
length and evaluation cost are limited to guard against hostile or runaway
expressions.
*/
package policy
