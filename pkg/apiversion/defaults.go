// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package apiversion

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	// Env is the OS environment variable consulted for the default version of Global().
	Env = "KCHART_DEFAULT_API_VERSION"

	// DefaultVersion is used when neither Env nor an explicit setting is present.
	DefaultVersion = "v1"
)

// Defaults is safe for concurrent use.
type Defaults struct {
	mu      sync.RWMutex
	version string
	groups  map[string]string
}

func New(version string) *Defaults {
	if version == "" {
		version = DefaultVersion
	}
	return &Defaults{version: version, groups: map[string]string{}}
}

func (d *Defaults) Version() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

func (d *Defaults) SetVersion(version string) *Defaults {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.version = version
	return d
}

// SetGroupVersion makes objects of the given group default to version
// instead of the overall default version.
func (d *Defaults) SetGroupVersion(group, version string) *Defaults {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.groups[group] = version
	return d
}

// GroupVersions returns a copy of configured per-group versions.
func (d *Defaults) GroupVersions() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	result := make(map[string]string, len(d.groups))
	for group, version := range d.groups {
		result[group] = version
	}
	return result
}

func (d *Defaults) GroupVersion(group string) schema.GroupVersion {
	d.mu.RLock()
	defer d.mu.RUnlock()
	version, found := d.groups[group]
	if !found {
		version = d.version
	}
	return schema.GroupVersion{Group: group, Version: version}
}

// ResolveAPIVersion returns explicit when it is set; otherwise the
// default version for group.
func (d *Defaults) ResolveAPIVersion(group, explicit string) string {
	return Resolve(group, explicit, d.GroupVersion(group).Version)
}

// Resolve is the pure form of Defaults.ResolveAPIVersion.
func Resolve(group, explicit, version string) string {
	if explicit != "" {
		return explicit
	}
	return schema.GroupVersion{Group: group, Version: version}.String()
}

func (d *Defaults) String() string {
	groups := d.GroupVersions()
	var pairs []string
	for group, version := range groups {
		pairs = append(pairs, group+"="+version)
	}
	sort.Strings(pairs)
	if len(pairs) == 0 {
		return d.Version()
	}
	return fmt.Sprintf("%s (%s)", d.Version(), strings.Join(pairs, ", "))
}

var (
	globalMu sync.Mutex
	global   *Defaults
)

// Global returns the process-wide Defaults, creating it from Env on first use.
func Global() *Defaults {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New(strings.TrimSpace(os.Getenv(Env)))
	}
	return global
}

// ResetForTesting drops the process-wide Defaults, forcing reload from Env on next use.
//
// This is for testing purposes only.
func ResetForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = nil
}
