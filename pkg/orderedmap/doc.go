// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

This flavor of map is crucial in keeping rendered manifests deterministic and
stable: labels, annotations and other user supplied mappings are emitted in
the order they were set.
*/
package orderedmap
