// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

type Deployment struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *DeploymentSpec
}

var _ render.Object = Deployment{}

func (d Deployment) ObjectKind() render.ObjectKind { return d.TypeMeta.objectKind("Deployment") }

func (d Deployment) Fields() []render.Field {
	return withMetadata(d.Metadata, render.Attr("spec", d.Spec))
}

type DeploymentSpec struct {
	Selector                LabelSelector
	Template                PodTemplateSpec
	Replicas                *int32
	Strategy                *DeploymentStrategy
	MinReadySeconds         *int32
	RevisionHistoryLimit    *int32
	Paused                  *bool
	ProgressDeadlineSeconds *int32
}

func (s DeploymentSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("replicas", s.Replicas),
		render.Attr("selector", s.Selector),
		render.Attr("template", s.Template),
		render.Attr("strategy", s.Strategy),
		render.Attr("min_ready_seconds", s.MinReadySeconds),
		render.Attr("revision_history_limit", s.RevisionHistoryLimit),
		render.Attr("paused", s.Paused),
		render.Attr("progress_deadline_seconds", s.ProgressDeadlineSeconds),
	}
}

type DeploymentStrategy struct {
	Type          *string
	RollingUpdate *RollingUpdateDeployment
}

func (s DeploymentStrategy) Fields() []render.Field {
	return []render.Field{
		render.Attr("type", s.Type),
		render.Attr("rolling_update", s.RollingUpdate),
	}
}

type RollingUpdateDeployment struct {
	MaxUnavailable *IntOrString
	MaxSurge       *IntOrString
}

func (u RollingUpdateDeployment) Fields() []render.Field {
	return []render.Field{
		render.Attr("max_unavailable", u.MaxUnavailable),
		render.Attr("max_surge", u.MaxSurge),
	}
}

type StatefulSet struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *StatefulSetSpec
}

var _ render.Object = StatefulSet{}

func (s StatefulSet) ObjectKind() render.ObjectKind { return s.TypeMeta.objectKind("StatefulSet") }

func (s StatefulSet) Fields() []render.Field {
	return withMetadata(s.Metadata, render.Attr("spec", s.Spec))
}

type StatefulSetSpec struct {
	Selector             LabelSelector
	Template             PodTemplateSpec
	ServiceName          string
	Replicas             *int32
	VolumeClaimTemplates []PersistentVolumeClaim
	PodManagementPolicy  *string
	UpdateStrategy       *StatefulSetUpdateStrategy
	RevisionHistoryLimit *int32
	MinReadySeconds      *int32
}

func (s StatefulSetSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("replicas", s.Replicas),
		render.Attr("selector", s.Selector),
		render.Attr("template", s.Template),
		render.Attr("volume_claim_templates", s.volumeClaimTemplates()),
		render.Attr("service_name", s.ServiceName),
		render.Attr("pod_management_policy", s.PodManagementPolicy),
		render.Attr("update_strategy", s.UpdateStrategy),
		render.Attr("revision_history_limit", s.RevisionHistoryLimit),
		render.Attr("min_ready_seconds", s.MinReadySeconds),
	}
}

// volumeClaimTemplates are embedded claims and carry no apiVersion or kind.
func (s StatefulSetSpec) volumeClaimTemplates() []PersistentVolumeClaimTemplate {
	if s.VolumeClaimTemplates == nil {
		return nil
	}
	result := make([]PersistentVolumeClaimTemplate, 0, len(s.VolumeClaimTemplates))
	for _, claim := range s.VolumeClaimTemplates {
		result = append(result, PersistentVolumeClaimTemplate{claim.Metadata, claim.Spec})
	}
	return result
}

type PersistentVolumeClaimTemplate struct {
	Metadata *ObjectMeta
	Spec     *PersistentVolumeClaimSpec
}

func (t PersistentVolumeClaimTemplate) Fields() []render.Field {
	return withMetadata(t.Metadata, render.Attr("spec", t.Spec))
}

type StatefulSetUpdateStrategy struct {
	Type          *string
	RollingUpdate *RollingUpdateStatefulSetStrategy
}

func (s StatefulSetUpdateStrategy) Fields() []render.Field {
	return []render.Field{
		render.Attr("type", s.Type),
		render.Attr("rolling_update", s.RollingUpdate),
	}
}

type RollingUpdateStatefulSetStrategy struct {
	Partition      *int32
	MaxUnavailable *IntOrString
}

func (s RollingUpdateStatefulSetStrategy) Fields() []render.Field {
	return []render.Field{
		render.Attr("partition", s.Partition),
		render.Attr("max_unavailable", s.MaxUnavailable),
	}
}

type DaemonSet struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *DaemonSetSpec
}

var _ render.Object = DaemonSet{}

func (d DaemonSet) ObjectKind() render.ObjectKind { return d.TypeMeta.objectKind("DaemonSet") }

func (d DaemonSet) Fields() []render.Field {
	return withMetadata(d.Metadata, render.Attr("spec", d.Spec))
}

type DaemonSetSpec struct {
	Selector             LabelSelector
	Template             PodTemplateSpec
	UpdateStrategy       *DaemonSetUpdateStrategy
	MinReadySeconds      *int32
	RevisionHistoryLimit *int32
}

func (s DaemonSetSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("selector", s.Selector),
		render.Attr("template", s.Template),
		render.Attr("update_strategy", s.UpdateStrategy),
		render.Attr("min_ready_seconds", s.MinReadySeconds),
		render.Attr("revision_history_limit", s.RevisionHistoryLimit),
	}
}

type DaemonSetUpdateStrategy struct {
	Type          *string
	RollingUpdate *RollingUpdateDaemonSet
}

func (s DaemonSetUpdateStrategy) Fields() []render.Field {
	return []render.Field{
		render.Attr("type", s.Type),
		render.Attr("rolling_update", s.RollingUpdate),
	}
}

type RollingUpdateDaemonSet struct {
	MaxUnavailable *IntOrString
	MaxSurge       *IntOrString
}

func (u RollingUpdateDaemonSet) Fields() []render.Field {
	return []render.Field{
		render.Attr("max_unavailable", u.MaxUnavailable),
		render.Attr("max_surge", u.MaxSurge),
	}
}

type ReplicaSet struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *ReplicaSetSpec
}

var _ render.Object = ReplicaSet{}

func (r ReplicaSet) ObjectKind() render.ObjectKind { return r.TypeMeta.objectKind("ReplicaSet") }

func (r ReplicaSet) Fields() []render.Field {
	return withMetadata(r.Metadata, render.Attr("spec", r.Spec))
}

type ReplicaSetSpec struct {
	Selector        LabelSelector
	Replicas        *int32
	MinReadySeconds *int32
	Template        *PodTemplateSpec
}

func (s ReplicaSetSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("replicas", s.Replicas),
		render.Attr("min_ready_seconds", s.MinReadySeconds),
		render.Attr("selector", s.Selector),
		render.Attr("template", s.Template),
	}
}
