// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package securerand

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=securerand.go -destination=mocks/mock_source.go -package=mocks Source

import (
	"crypto/rand"
	"encoding/base64"
)

// Source defines an interface for obtaining cryptographically secure random bytes.
type Source interface {
	// Fill overwrites b entirely with random bytes. A non-nil error means
	// no usable randomness was produced and b must not be used.
	Fill(b []byte) error
}

// OSSource implements Source using the operating system's CSPRNG via crypto/rand.
type OSSource struct{}

// Fill fills b with random bytes from crypto/rand.
func (OSSource) Fill(b []byte) error {
	_, err := rand.Read(b)
	return err
}

// String draws n random bytes from src and returns them base64-encoded
// using the unpadded URL-safe alphabet, suitable for embedding in URL
// query parameters without percent-encoding.
func String(src Source, n int) (string, error) {
	b := make([]byte, n)
	if err := src.Fill(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
