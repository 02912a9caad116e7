// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"reflect"
)

// UnsupportedValueError is returned for values that are neither
// renderable objects, mappings, sequences, scalars nor absent.
type UnsupportedValueError struct {
	Path string
	Type reflect.Type
}

func (e *UnsupportedValueError) Error() string {
	path := e.Path
	if len(path) == 0 {
		path = "(root)"
	}
	return fmt.Sprintf("Expected value at '%s' to be a renderable object, mapping, sequence or scalar, but was '%s'", path, e.Type)
}
