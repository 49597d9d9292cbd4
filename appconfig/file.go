// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package appconfig

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultManifestPath is the manifest location searched under the XDG config
// directories when no explicit path is given to LoadDefault.
const DefaultManifestPath = "ssokit/app.yaml"

// manifest is the on-disk shape of the host application manifest.
type manifest struct {
	URLSchemes []string `yaml:"url_schemes"`
}

// FileConfig is a Config loaded from a YAML manifest declaring the host
// application's registered URL schemes:
//
//	url_schemes:
//	  - twitterkit-abc123
//	  - myapp
type FileConfig struct {
	schemes []string
	path    string
}

// LoadFile reads a host application manifest from path.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading app manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing app manifest %s: %w", path, err)
	}

	return &FileConfig{schemes: m.URLSchemes, path: path}, nil
}

// LoadDefault locates the manifest at DefaultManifestPath in the XDG config
// directories and loads it.
func LoadDefault() (*FileConfig, error) {
	path, err := xdg.SearchConfigFile(DefaultManifestPath)
	if err != nil {
		return nil, fmt.Errorf("locating app manifest: %w", err)
	}
	return LoadFile(path)
}

// RegisteredURLSchemes implements Config.
func (c *FileConfig) RegisteredURLSchemes() []string {
	return c.schemes
}

// Path returns the manifest file the configuration was loaded from.
func (c *FileConfig) Path() string {
	return c.path
}
