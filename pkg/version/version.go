// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is set at build time, e.g.
// -ldflags "-X carvel.dev/kchart/pkg/version.Version=1.0.0"
var Version = "develop"
