// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"bytes"
	"fmt"
	"io"

	"carvel.dev/kchart/pkg/orderedmap"
	"carvel.dev/kchart/pkg/render"
	"gopkg.in/yaml.v2"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Unstructured is an object of arbitrary kind backed by an ordered map,
// typically read from an existing manifest.
type Unstructured struct {
	Object *orderedmap.Map
}

var _ render.Object = Unstructured{}

func (u Unstructured) Kind() string       { return u.stringField("kind") }
func (u Unstructured) APIVersion() string { return u.stringField("apiVersion") }

// ObjectKind derives the group from apiVersion when it is set,
// and from the kind table otherwise.
func (u Unstructured) ObjectKind() render.ObjectKind {
	kind := u.Kind()
	apiVersion := u.APIVersion()

	group := GroupForKind(kind)
	if len(apiVersion) > 0 {
		if gv, err := schema.ParseGroupVersion(apiVersion); err == nil {
			group = gv.Group
		}
	}

	return render.ObjectKind{
		GroupKind:  schema.GroupKind{Group: group, Kind: kind},
		APIVersion: apiVersion,
	}
}

func (u Unstructured) Fields() []render.Field {
	var fields []render.Field
	u.Object.Iterate(func(k string, v interface{}) {
		if k == "apiVersion" || k == "kind" {
			return
		}
		fields = append(fields, render.KeyOverride(k, v))
	})
	return fields
}

func (u Unstructured) stringField(key string) string {
	val, found := u.Object.Get(key)
	if !found {
		return ""
	}
	typedVal, ok := val.(string)
	if !ok {
		return ""
	}
	return typedVal
}

// ParseManifests reads a (multi-document) YAML stream.
// Empty documents are skipped; every other document must be a mapping with a kind.
//
// Scalars keep their YAML type but not their spelling: floats with an integral
// value come back without a fraction (ratio: 1.0 renders as ratio: 1) and
// quoting is chosen again on output.
func ParseManifests(name string, data []byte) ([]Unstructured, error) {
	var result []Unstructured

	dec := yaml.NewDecoder(bytes.NewReader(data))

	for i := 0; ; i++ {
		var doc yaml.MapSlice

		err := dec.Decode(&doc)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("Unmarshaling YAML document %d in '%s': %w", i, name, err)
		}
		if doc == nil {
			continue
		}

		obj, err := fromMapSlice(doc)
		if err != nil {
			return nil, fmt.Errorf("Converting YAML document %d in '%s': %w", i, name, err)
		}

		res := Unstructured{obj.(*orderedmap.Map)}

		kind, found := res.Object.Get("kind")
		if !found {
			return nil, fmt.Errorf("Expected YAML document %d in '%s' to specify kind", i, name)
		}
		typedKind, ok := kind.(string)
		if !ok || len(typedKind) == 0 {
			return nil, fmt.Errorf("Expected YAML document %d in '%s' to have non-empty string kind, but was '%v'", i, name, kind)
		}
		if !render.ValidKind(typedKind) {
			return nil, fmt.Errorf("Expected YAML document %d in '%s' to have kind made of letters and digits, but was '%s'", i, name, typedKind)
		}
		if apiVersion, found := res.Object.Get("apiVersion"); found {
			if _, ok := apiVersion.(string); !ok {
				return nil, fmt.Errorf("Expected YAML document %d in '%s' to have string apiVersion, but was '%v'", i, name, apiVersion)
			}
		}

		result = append(result, res)
	}

	return result, nil
}

func fromMapSlice(val interface{}) (interface{}, error) {
	switch typedVal := val.(type) {
	case yaml.MapSlice:
		result := orderedmap.NewMap()
		for _, item := range typedVal {
			key, ok := item.Key.(string)
			if !ok {
				// non-string keys (e.g. 80: or true:) are kept in their YAML form
				key = fmt.Sprintf("%v", item.Key)
			}
			if _, found := result.Get(key); found {
				return nil, fmt.Errorf("Expected unique map key '%s'", key)
			}
			itemVal, err := fromMapSlice(item.Value)
			if err != nil {
				return nil, err
			}
			result.Set(key, itemVal)
		}
		return result, nil

	case []interface{}:
		result := make([]interface{}, 0, len(typedVal))
		for _, item := range typedVal {
			itemVal, err := fromMapSlice(item)
			if err != nil {
				return nil, err
			}
			result = append(result, itemVal)
		}
		return result, nil

	case map[interface{}]interface{}:
		// yaml.v2 decodes nested maps as MapSlice when decoding into MapSlice
		return fromMapSlice(orderedmap.Conversion{Object: typedVal}.FromUnorderedMaps())

	case *orderedmap.Map:
		return typedVal, nil

	default:
		return val, nil
	}
}
