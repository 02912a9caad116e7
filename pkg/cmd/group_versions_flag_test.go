// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"testing"

	"carvel.dev/kchart/pkg/apiversion"
	"carvel.dev/kchart/pkg/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupVersionsFlag(t *testing.T) {
	var flag cmd.GroupVersionsFlag

	require.NoError(t, flag.Set("apps=v1beta2"))
	require.NoError(t, flag.Set("core=v2"))
	require.NoError(t, flag.Set("apps=v1beta1"))
	assert.Equal(t, "apps=v1beta2,core=v2,apps=v1beta1", flag.String())
	assert.Equal(t, "string", flag.Type())

	require.NoError(t, flag.Resolve())

	defaults := apiversion.New("v1")
	require.NoError(t, flag.Apply(defaults))

	assert.Equal(t, map[string]string{"apps": "v1beta1", "": "v2"}, defaults.GroupVersions())
	assert.Equal(t, "apps/v1beta1", defaults.ResolveAPIVersion("apps", ""))
	assert.Equal(t, "v2", defaults.ResolveAPIVersion("", ""))
	assert.Equal(t, "batch/v1", defaults.ResolveAPIVersion("batch", ""))
}

func TestGroupVersionsFlagInvalid(t *testing.T) {
	var flag cmd.GroupVersionsFlag

	require.NoError(t, flag.Set("apps"))
	require.EqualError(t, flag.Resolve(), "Expected group version 'apps' to be in format 'group=version'")
	require.EqualError(t, flag.Apply(apiversion.New("v1")), "Expected group version 'apps' to be in format 'group=version'")
}
