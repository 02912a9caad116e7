// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

// HorizontalPodAutoscaler follows the autoscaling/v1 shape.
type HorizontalPodAutoscaler struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *HorizontalPodAutoscalerSpec
}

var _ render.Object = HorizontalPodAutoscaler{}

func (a HorizontalPodAutoscaler) ObjectKind() render.ObjectKind {
	return a.TypeMeta.objectKind("HorizontalPodAutoscaler")
}

func (a HorizontalPodAutoscaler) Fields() []render.Field {
	return withMetadata(a.Metadata, render.Attr("spec", a.Spec))
}

type HorizontalPodAutoscalerSpec struct {
	ScaleTargetRef                 CrossVersionObjectReference
	MaxReplicas                    int32
	MinReplicas                    *int32
	TargetCPUUtilizationPercentage *int32
}

func (s HorizontalPodAutoscalerSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("scale_target_ref", s.ScaleTargetRef),
		render.Attr("min_replicas", s.MinReplicas),
		render.Attr("max_replicas", s.MaxReplicas),
		render.Attr("target_CPU_utilization_percentage", s.TargetCPUUtilizationPercentage),
	}
}

type CrossVersionObjectReference struct {
	Kind       string
	Name       string
	APIVersion *string
}

func (r CrossVersionObjectReference) Fields() []render.Field {
	return []render.Field{
		render.Attr("kind", r.Kind),
		render.Attr("name", r.Name),
		render.Attr("api_version", r.APIVersion),
	}
}
