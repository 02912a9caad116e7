// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package apiversion

import (
	"fmt"
	"strings"
)

// ParseGroupVersion parses "group=version" (e.g. "apps=v1beta2").
// The core group is written as an empty group ("=v1") or "core".
func ParseGroupVersion(pair string) (string, string, error) {
	pieces := strings.SplitN(pair, "=", 2)
	if len(pieces) != 2 {
		return "", "", fmt.Errorf("Expected group version '%s' to be in format 'group=version'", pair)
	}
	group := strings.TrimSpace(pieces[0])
	version := strings.TrimSpace(pieces[1])
	if version == "" {
		return "", "", fmt.Errorf("Expected group version '%s' to specify non-empty version", pair)
	}
	if group == "core" {
		group = ""
	}
	return group, version, nil
}
