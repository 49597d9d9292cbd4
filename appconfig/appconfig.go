// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package appconfig

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=appconfig.go -destination=mocks/mock_config.go -package=mocks Config

import "strings"

// Config exposes the URL schemes the host application has registered with
// its platform. The SSO flow needs this to detect a host application that
// never registered the callback scheme derived from its consumer key.
type Config interface {
	RegisteredURLSchemes() []string
}

// Static is a Config with an explicit scheme list, for host applications
// that know their registrations at compile time and for tests.
type Static struct {
	Schemes []string
}

// RegisteredURLSchemes implements Config.
func (s Static) RegisteredURLSchemes() []string {
	return s.Schemes
}

// HasScheme reports whether cfg registers scheme. Comparison is
// case-insensitive; URL schemes are case-insensitive per RFC 3986 and
// authorization servers may lowercase the callback scheme they echo back.
func HasScheme(cfg Config, scheme string) bool {
	if cfg == nil || scheme == "" {
		return false
	}
	for _, registered := range cfg.RegisteredURLSchemes() {
		if strings.EqualFold(registered, scheme) {
			return true
		}
	}
	return false
}
