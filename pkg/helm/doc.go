// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package helm invokes an external helm binary against a built chart directory.

Both Helm 2 and Helm 3 command lines are supported; the client version is
detected with `helm version --short` before installing or uninstalling.
Waiting for releases, rollbacks and status tracking are left to helm itself.
*/
package helm
