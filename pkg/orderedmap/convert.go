// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"fmt"
	"sort"
)

type Conversion struct {
	Object interface{}
}

// FromUnorderedMaps returns a copy of Object where every Go map is replaced
// by a *Map with keys in sorted order. Object itself is not modified.
func (c Conversion) FromUnorderedMaps() interface{} {
	return c.fromUnorderedMaps(c.Object)
}

func (c Conversion) fromUnorderedMaps(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case map[interface{}]interface{}:
		result := NewMap()
		origKeys := c.mapKeysFromInterfaceMap(typedObj)
		for _, key := range c.sortedMapKeys(origKeys) {
			result.Set(key, c.fromUnorderedMaps(typedObj[origKeys[key]]))
		}
		return result

	case map[string]interface{}:
		result := NewMap()
		for _, key := range c.sortedMapKeys(c.mapKeysFromStringMap(typedObj)) {
			result.Set(key, c.fromUnorderedMaps(typedObj[key]))
		}
		return result

	case map[string]string:
		result := NewMap()
		for _, key := range c.sortedMapKeys(c.mapKeysFromPlainStringMap(typedObj)) {
			result.Set(key, typedObj[key])
		}
		return result

	case *Map:
		panic("Expected map[string]interface{} instead of *orderedmap.Map in fromUnorderedMaps")

	case []interface{}:
		result := make([]interface{}, len(typedObj))
		for i, item := range typedObj {
			result[i] = c.fromUnorderedMaps(item)
		}
		return result

	default:
		return typedObj
	}
}

func (Conversion) mapKeysFromInterfaceMap(m map[interface{}]interface{}) map[string]interface{} {
	keys := map[string]interface{}{}
	for k := range m {
		keys[fmt.Sprintf("%v", k)] = k
	}
	return keys
}

func (Conversion) mapKeysFromStringMap(m map[string]interface{}) map[string]interface{} {
	keys := map[string]interface{}{}
	for k := range m {
		keys[k] = k
	}
	return keys
}

func (Conversion) mapKeysFromPlainStringMap(m map[string]string) map[string]interface{} {
	keys := map[string]interface{}{}
	for k := range m {
		keys[k] = k
	}
	return keys
}

func (Conversion) sortedMapKeys(keys map[string]interface{}) []string {
	var result []string
	for k := range keys {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
