// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

type Renderable interface {
	Fields() []Field
}

// Object is a Renderable that represents a top-level API object.
type Object interface {
	Renderable
	ObjectKind() ObjectKind
}

type ObjectKind struct {
	schema.GroupKind
	// APIVersion is the explicitly requested version (e.g. "apps/v1beta2").
	// When empty the renderer's APIVersionResolver decides.
	APIVersion string
}

// Scalar is implemented by values that render as a single YAML scalar
// (string, bool, integer or float) but are not represented as one in Go.
type Scalar interface {
	RenderScalar() interface{}
}

type Field struct {
	Name  string
	Key   string
	Value interface{}
}

// Attr declares a field keyed by the lowerCamelCase form of name.
func Attr(name string, value interface{}) Field {
	return Field{Name: name, Value: value}
}

// KeyOverride declares a field keyed by key verbatim.
func KeyOverride(key string, value interface{}) Field {
	return Field{Name: key, Key: key, Value: value}
}

func (f Field) WireKey() string {
	if len(f.Key) > 0 {
		return f.Key
	}
	return CamelCase(f.Name)
}

// CamelCase converts a snake_case identifier to lowerCamelCase.
// Only the first rune of each following piece is upper-cased,
// so "cluster_IP" becomes "clusterIP".
func CamelCase(name string) string {
	var result strings.Builder
	first := true

	for _, piece := range strings.Split(name, "_") {
		if len(piece) == 0 {
			continue
		}
		if first {
			result.WriteString(piece)
			first = false
			continue
		}
		r, size := utf8.DecodeRuneInString(piece)
		result.WriteRune(unicode.ToUpper(r))
		result.WriteString(piece[size:])
	}

	return result.String()
}
