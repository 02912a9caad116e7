// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

type PodDisruptionBudget struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *PodDisruptionBudgetSpec
}

var _ render.Object = PodDisruptionBudget{}

func (b PodDisruptionBudget) ObjectKind() render.ObjectKind {
	return b.TypeMeta.objectKind("PodDisruptionBudget")
}

func (b PodDisruptionBudget) Fields() []render.Field {
	return withMetadata(b.Metadata, render.Attr("spec", b.Spec))
}

type PodDisruptionBudgetSpec struct {
	MinAvailable   *IntOrString
	MaxUnavailable *IntOrString
	Selector       *LabelSelector
}

func (s PodDisruptionBudgetSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("min_available", s.MinAvailable),
		render.Attr("selector", s.Selector),
		render.Attr("max_unavailable", s.MaxUnavailable),
	}
}
