// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package appconfig abstracts discovery of the URL schemes a host application
has registered with its platform.

On mobile platforms this information lives in the application bundle
(Info.plist on iOS, the manifest on Android). This package decouples redirect
scheme resolution from any particular configuration format behind the [Config]
capability, which mobilesso consults to detect a host application that never
registered the callback scheme derived from its consumer key.

# Implementations

[Static] wraps an explicit scheme list. [FileConfig] loads a YAML manifest,
either from an explicit path or from the XDG config directories via
[LoadDefault].

# Testing

A generated gomock mock for [Config] is available in the mocks sub-package.
*/
package appconfig
