// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of kchart.

kchart turns Kubernetes resources, described either as typed Go values or as
existing YAML manifests, into a Helm chart directory. Packages depend on each
other only to the degree required.

In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

kchart is built into a single command-line tool:

	./cmd/kchart

# Commands

"build" produces a chart; "install" and "uninstall" delegate to the helm binary.

	(1) => pkg/cmd => (8)
	(1) => pkg/cmd/ui => (1)

# Charts

A chart is a descriptor (chart.yaml) plus one template file per resource.

	(1) => pkg/chart => (3)
	(1) => pkg/helm => (1)

# Resources

Typed Kubernetes objects and an ordered-map backed object for manifests
read from files.

	(1) => pkg/kube => (2)

# Rendering

Renderable values are converted to ordered, plain YAML. Objects get an
apiVersion header resolved from process-wide or per-build defaults.

	(3) => pkg/render => (2)
	(2) => pkg/apiversion => (0)

# Utilities

	(4) => pkg/files => (0)
	(3) => pkg/orderedmap => (0)
	(1) => pkg/version => (0)

# Dependencies

	pkg/cmd:
	- pkg/apiversion
	- pkg/chart
	- pkg/cmd/ui
	- pkg/files
	- pkg/helm
	- pkg/kube
	- pkg/render
	- pkg/version
	pkg/cmd/ui:
	- pkg/files
	pkg/chart:
	- pkg/files
	- pkg/orderedmap
	- pkg/render
	pkg/helm:
	- pkg/files
	pkg/kube:
	- pkg/orderedmap
	- pkg/render
	pkg/render:
	- pkg/apiversion
	- pkg/orderedmap
*/
package pkg
