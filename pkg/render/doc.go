// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package render turns typed values into deterministic YAML documents.

Types take part by implementing Renderable: they list their fields, in the
order they should appear, as Field values. Each field is keyed either by the
lowerCamelCase form of its snake_case name ("api_version" -> "apiVersion") or
by an explicit key attached with KeyOverride (for keys like "continue").

Fields holding an absent value (nil pointer, nil slice, nil map, nil
interface) are left out entirely. Kubernetes treats an explicit null
differently from a missing key for many fields.

Types that are top-level API objects implement Object; their documents always
start with apiVersion and kind. The apiVersion is resolved through an
APIVersionResolver (see package apiversion) unless the object names one.
*/
package render
