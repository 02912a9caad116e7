// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package chart_test

import (
	"testing"

	"carvel.dev/kchart/pkg/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDescriptor(t *testing.T) {
	data := []byte(`
apiVersion = "v2"
name = "guestbook"
version = "0.1.0"
description = "Guestbook application"
keywords = ["demo"]

[[maintainers]]
name = "ops"
url = "https://example.com/ops"

[annotations]
zeta = "last-alphabetically"
alpha = "first-alphabetically"
`)

	desc, err := chart.LoadDescriptor("chart.toml", data)
	require.NoError(t, err)

	assert.Equal(t, "v2", desc.APIVersion)
	assert.Equal(t, "guestbook", desc.Name)
	assert.Equal(t, "0.1.0", desc.Version)
	assert.Equal(t, "Guestbook application", *desc.Description)
	assert.Nil(t, desc.KubeVersion)
	assert.Equal(t, []string{"demo"}, desc.Keywords)
	require.Len(t, desc.Maintainers, 1)
	assert.Equal(t, "ops", desc.Maintainers[0].Name)
	assert.Nil(t, desc.Maintainers[0].Email)
	assert.Equal(t, "https://example.com/ops", *desc.Maintainers[0].URL)
	assert.Equal(t, []string{"zeta", "alpha"}, desc.Annotations.Keys())
}

func TestLoadDescriptorErrors(t *testing.T) {
	_, err := chart.LoadDescriptor("chart.toml", []byte(`name = "x"`+"\n"+`unknown = 1`))
	require.EqualError(t, err, "Expected chart descriptor 'chart.toml' to only contain known keys, but found 'unknown'")

	_, err = chart.LoadDescriptor("chart.toml", []byte(`name = `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unmarshaling chart descriptor 'chart.toml'")
}
