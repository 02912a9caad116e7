// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"strings"

	"carvel.dev/kchart/pkg/apiversion"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/pflag"
)

// GroupVersionsFlag collects 'group=version' pairs. Pairs are
// validated by Resolve once all flags are parsed.
type GroupVersionsFlag struct {
	pairs    []string
	resolved map[string]string
}

var _ pflag.Value = &GroupVersionsFlag{}
var _ cobrautil.ResolvableFlag = &GroupVersionsFlag{}

func (f *GroupVersionsFlag) Set(val string) error {
	f.pairs = append(f.pairs, val)
	return nil
}

func (f *GroupVersionsFlag) Type() string   { return "string" }
func (f *GroupVersionsFlag) String() string { return strings.Join(f.pairs, ",") }

func (f *GroupVersionsFlag) Resolve() error {
	resolved := map[string]string{}

	for _, pair := range f.pairs {
		group, version, err := apiversion.ParseGroupVersion(pair)
		if err != nil {
			return err
		}
		resolved[group] = version
	}

	f.resolved = resolved
	return nil
}

// Apply sets resolved pairs on defaults. Pairs are resolved first if necessary.
func (f *GroupVersionsFlag) Apply(defaults *apiversion.Defaults) error {
	if f.resolved == nil {
		err := f.Resolve()
		if err != nil {
			return err
		}
	}
	for group, version := range f.resolved {
		defaults.SetGroupVersion(group, version)
	}
	return nil
}
