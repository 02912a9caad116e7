// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"regexp"
)

var kindRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ValidKind reports whether kind looks like a Kubernetes kind
// (e.g. "Deployment", "HorizontalPodAutoscaler"). Kinds end up in
// chart file names, so separators and dots are not allowed.
func ValidKind(kind string) bool {
	return kindRegexp.MatchString(kind)
}
