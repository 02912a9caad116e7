// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package kube contains typed Kubernetes resource definitions that render
through package render.

Coverage is representative rather than exhaustive: the commonly used kinds
of the core, apps, batch, networking, rbac, policy and autoscaling groups.
Anything else can be expressed with Unstructured. Unstructured objects read
from manifests keep key order and scalar types, but not scalar spelling:
a float such as 1.0 renders as 1.

Required fields are plain values. Optional scalars are pointers
(see k8s.io/utils/ptr), optional objects are pointers, and mappings
(labels, annotations, data) are *orderedmap.Map so their order is kept.
Values are never validated.
*/
package kube
