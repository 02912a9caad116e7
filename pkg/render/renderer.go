// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"

	"carvel.dev/kchart/pkg/apiversion"
	"carvel.dev/kchart/pkg/orderedmap"
)

type APIVersionResolver interface {
	ResolveAPIVersion(group, explicit string) string
}

var _ APIVersionResolver = &apiversion.Defaults{}

type RendererOpts struct {
	// APIVersions defaults to apiversion.Global() when nil.
	APIVersions APIVersionResolver
}

type Renderer struct {
	opts RendererOpts
}

func NewRenderer(opts RendererOpts) Renderer {
	return Renderer{opts}
}

// AsBytes renders val with a renderer using process-wide defaults.
func AsBytes(val interface{}) ([]byte, error) {
	return NewRenderer(RendererOpts{}).AsBytes(val)
}

// AsBytes renders val as a single YAML document.
func (r Renderer) AsBytes(val interface{}) ([]byte, error) {
	plainVal, err := r.AsPlain(val)
	if err != nil {
		return nil, err
	}
	return marshalLowYAML(plainVal)
}

// AsDocuments renders each value as a YAML document of a single stream.
func (r Renderer) AsDocuments(vals []interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	for i, val := range vals {
		docBytes, err := r.AsBytes(val)
		if err != nil {
			return nil, fmt.Errorf("Rendering document %d: %w", i, err)
		}
		buf.WriteString("---\n")
		buf.Write(docBytes)
	}
	return buf.Bytes(), nil
}

// AsPlain converts val into a tree made of *orderedmap.Map,
// []interface{} and scalars.
func (r Renderer) AsPlain(val interface{}) (interface{}, error) {
	if isAbsent(val) {
		return nil, fmt.Errorf("Expected value to render, but was absent")
	}
	return r.plain(val, "")
}

func (r Renderer) plain(val interface{}, path string) (interface{}, error) {
	if isAbsent(val) {
		// only reachable for items of mappings and sequences
		return nil, nil
	}

	switch typedVal := val.(type) {
	case Object:
		return r.object(typedVal, path)

	case Renderable:
		return r.fields(typedVal.Fields(), orderedmap.NewMap(), path)

	case Scalar:
		scalar := typedVal.RenderScalar()
		if !isScalar(scalar) {
			// name the Scalar itself; its result may be nil
			return nil, &UnsupportedValueError{Path: path, Type: reflect.TypeOf(typedVal)}
		}
		return r.scalar(reflect.ValueOf(scalar)), nil

	case *orderedmap.Map:
		result := orderedmap.NewMap()
		err := typedVal.IterateErr(func(k string, v interface{}) error {
			plainVal, err := r.plain(v, r.childPath(path, k))
			if err != nil {
				return err
			}
			result.Set(k, plainVal)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() {
	case reflect.Ptr:
		return r.plain(rv.Elem().Interface(), path)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedValueError{Path: path, Type: rv.Type()}
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

		result := orderedmap.NewMap()
		for _, key := range keys {
			plainVal, err := r.plain(rv.MapIndex(key).Interface(), r.childPath(path, key.String()))
			if err != nil {
				return nil, err
			}
			result.Set(key.String(), plainVal)
		}
		return result, nil

	case reflect.Slice, reflect.Array:
		result := make([]interface{}, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			plainVal, err := r.plain(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			result = append(result, plainVal)
		}
		return result, nil

	default:
		if isScalar(val) {
			return r.scalar(rv), nil
		}
		return nil, &UnsupportedValueError{Path: path, Type: rv.Type()}
	}
}

func (r Renderer) object(obj Object, path string) (interface{}, error) {
	kind := obj.ObjectKind()

	result := orderedmap.NewMap()
	result.Set("apiVersion", r.apiVersions().ResolveAPIVersion(kind.Group, kind.APIVersion))
	result.Set("kind", kind.Kind)

	return r.fields(obj.Fields(), result, path)
}

func (r Renderer) fields(fields []Field, result *orderedmap.Map, path string) (interface{}, error) {
	for _, field := range fields {
		if isAbsent(field.Value) {
			continue
		}
		key := field.WireKey()
		plainVal, err := r.plain(field.Value, r.childPath(path, key))
		if err != nil {
			return nil, err
		}
		result.Set(key, plainVal)
	}
	return result, nil
}

func (r Renderer) apiVersions() APIVersionResolver {
	if r.opts.APIVersions != nil {
		return r.opts.APIVersions
	}
	return apiversion.Global()
}

// scalar normalizes named types (e.g. type Protocol string)
// to their underlying builtin type.
func (Renderer) scalar(rv reflect.Value) interface{} {
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		panic(fmt.Sprintf("Unexpected scalar kind %s", rv.Kind()))
	}
}

func (Renderer) childPath(path, key string) string {
	if len(path) == 0 {
		return key
	}
	return path + "." + key
}

func isScalar(val interface{}) bool {
	if val == nil {
		return false
	}
	switch reflect.ValueOf(val).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isAbsent(val interface{}) bool {
	if val == nil {
		return true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
