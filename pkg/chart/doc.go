// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package chart assembles rendered resources into a directory laid out
like a Helm chart:

	<dir>/chart.yaml
	<dir>/templates/<Kind>-<n>.yaml

where n counts resources of the same kind in input order, starting at 0.
*/
package chart
