// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// IntOrString is used for ports and rollout percentages,
// which may be given either as a number or as a string.
type IntOrString struct {
	intstr.IntOrString
}

var _ render.Scalar = IntOrString{}

func FromInt(val int32) *IntOrString {
	return &IntOrString{intstr.FromInt32(val)}
}

func FromString(val string) *IntOrString {
	return &IntOrString{intstr.FromString(val)}
}

func (v IntOrString) RenderScalar() interface{} {
	if v.Type == intstr.Int {
		return v.IntVal
	}
	return v.StrVal
}
