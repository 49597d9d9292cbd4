// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package mobilesso validates the custom-URL-scheme redirect exchange used
// for single sign-on with a natively installed Twitter application.
//
// The exchange is: the host application opens an authorization URL in the
// Twitter application, which authenticates the user and redirects back via
// a custom URL scheme derived from the host's consumer key. This package
// builds the outbound URL, recognizes success and cancel redirects, and
// verifies that a success redirect genuinely belongs to the outbound request
// (scheme match, nonce echo, and a session-store token check).
//
// # Usage
//
// Create one [RedirectValidator] per authorization attempt:
//
//	v, err := mobilesso.NewRedirectValidator(mobilesso.AuthConfig{
//		ConsumerKey:    "abc123",
//		ConsumerSecret: "secret",
//	})
//	if err != nil {
//		// Handle configuration error
//	}
//	openURL(v.AuthorizationURL())
//
// When the platform delivers a redirect URL back to the host application:
//
//	outcome, err := v.Resolve(ctx, redirectURL, sessionStore)
//	switch outcome {
//	case mobilesso.OutcomeSuccess:
//		// proceed with the parameters of the redirect
//	case mobilesso.OutcomeCancel:
//		// user backed out
//	default:
//		// err carries an autherr reason; treat as unrecognized or hostile
//	}
//
// The classification and verification steps are also exposed individually
// (ClassifySuccess, ClassifyCancel, VerifyNonce, VerifyOAuthToken) for hosts
// that need finer control.
//
// # Collaborators
//
// Session validity, registered-scheme discovery, and randomness are injected
// capabilities (session.Store, appconfig.Config, securerand.Source), keeping
// this package free of platform and storage specifics.
//
// # Stability
//
// This package is Beta stability. The API may have minor changes before
// reaching stable status in v1.0.0.
package mobilesso
