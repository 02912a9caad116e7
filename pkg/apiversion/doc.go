// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package apiversion decides which apiVersion an object is rendered with when the
object itself does not name one.

A Defaults value holds the default version (e.g. "v1") plus optional
per-group versions (e.g. "autoscaling" -> "v2"). The group is prefixed per
Kubernetes convention, so a Deployment ("apps" group) defaults to "apps/v1".

Renderers receive a Defaults explicitly. For single-threaded CLI-style callers
there is a process-wide instance:

	apiversion.Global().SetVersion("v1beta1")

initialised from the environment variable named Env.
*/
package apiversion
