// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package apiversion_test

import (
	"os"
	"sync"
	"testing"

	"carvel.dev/kchart/pkg/apiversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	for _, testcase := range []struct {
		group, explicit, version string
		want                     string
	}{
		{group: "", explicit: "", version: "v1", want: "v1"},
		{group: "apps", explicit: "", version: "v1", want: "apps/v1"},
		{group: "rbac.authorization.k8s.io", explicit: "", version: "v1", want: "rbac.authorization.k8s.io/v1"},
		{group: "apps", explicit: "apps/v1beta2", version: "v1", want: "apps/v1beta2"},
		{group: "", explicit: "v2", version: "v1", want: "v2"},
	} {
		assert.Equal(t, testcase.want, apiversion.Resolve(testcase.group, testcase.explicit, testcase.version))
	}
}

func TestDefaultsGroupOverrides(t *testing.T) {
	defaults := apiversion.New("v1").SetGroupVersion("autoscaling", "v2")

	assert.Equal(t, "autoscaling/v2", defaults.ResolveAPIVersion("autoscaling", ""))
	assert.Equal(t, "apps/v1", defaults.ResolveAPIVersion("apps", ""))
	assert.Equal(t, "v1", defaults.ResolveAPIVersion("", ""))
	assert.Equal(t, "v1 (autoscaling=v2)", defaults.String())
}

func TestDefaultsChangeAffectsLaterResolution(t *testing.T) {
	defaults := apiversion.New("")
	require.Equal(t, "apps/v1", defaults.ResolveAPIVersion("apps", ""))

	defaults.SetVersion("v1beta1")
	require.Equal(t, "apps/v1beta1", defaults.ResolveAPIVersion("apps", ""))
	require.Equal(t, "apps/v1", defaults.ResolveAPIVersion("apps", "apps/v1"))
}

func TestGlobalReadsEnv(t *testing.T) {
	defer apiversion.ResetForTesting()

	apiversion.ResetForTesting()
	os.Setenv(apiversion.Env, "")
	assert.Equal(t, apiversion.DefaultVersion, apiversion.Global().Version())

	apiversion.ResetForTesting()
	os.Setenv(apiversion.Env, "v2")
	defer os.Unsetenv(apiversion.Env)
	assert.Equal(t, "v2", apiversion.Global().Version())
	assert.Same(t, apiversion.Global(), apiversion.Global())
}

func TestDefaultsConcurrentUse(t *testing.T) {
	defaults := apiversion.New("v1")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			defaults.SetGroupVersion("apps", "v1")
		}()
		go func() {
			defer wg.Done()
			defaults.ResolveAPIVersion("apps", "")
		}()
	}
	wg.Wait()

	assert.Equal(t, "apps/v1", defaults.ResolveAPIVersion("apps", ""))
}

func TestParseGroupVersion(t *testing.T) {
	group, version, err := apiversion.ParseGroupVersion("apps=v1beta2")
	require.NoError(t, err)
	assert.Equal(t, "apps", group)
	assert.Equal(t, "v1beta2", version)

	group, version, err = apiversion.ParseGroupVersion("core=v1")
	require.NoError(t, err)
	assert.Equal(t, "", group)
	assert.Equal(t, "v1", version)

	_, _, err = apiversion.ParseGroupVersion("apps")
	require.EqualError(t, err, "Expected group version 'apps' to be in format 'group=version'")

	_, _, err = apiversion.ParseGroupVersion("apps=")
	require.EqualError(t, err, "Expected group version 'apps=' to specify non-empty version")
}
