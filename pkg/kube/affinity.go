// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

type Affinity struct {
	NodeAffinity    *NodeAffinity
	PodAffinity     *PodAffinity
	PodAntiAffinity *PodAntiAffinity
}

func (a Affinity) Fields() []render.Field {
	return []render.Field{
		render.Attr("node_affinity", a.NodeAffinity),
		render.Attr("pod_affinity", a.PodAffinity),
		render.Attr("pod_anti_affinity", a.PodAntiAffinity),
	}
}

type NodeAffinity struct {
	RequiredDuringSchedulingIgnoredDuringExecution  *NodeSelector
	PreferredDuringSchedulingIgnoredDuringExecution []PreferredSchedulingTerm
}

func (a NodeAffinity) Fields() []render.Field {
	return []render.Field{
		render.Attr("required_during_scheduling_ignored_during_execution", a.RequiredDuringSchedulingIgnoredDuringExecution),
		render.Attr("preferred_during_scheduling_ignored_during_execution", a.PreferredDuringSchedulingIgnoredDuringExecution),
	}
}

type NodeSelector struct {
	NodeSelectorTerms []NodeSelectorTerm
}

func (s NodeSelector) Fields() []render.Field {
	return []render.Field{render.Attr("node_selector_terms", s.NodeSelectorTerms)}
}

type NodeSelectorTerm struct {
	MatchExpressions []NodeSelectorRequirement
	MatchFields      []NodeSelectorRequirement
}

func (t NodeSelectorTerm) Fields() []render.Field {
	return []render.Field{
		render.Attr("match_expressions", t.MatchExpressions),
		render.Attr("match_fields", t.MatchFields),
	}
}

type NodeSelectorRequirement struct {
	Key      string
	Operator string
	Values   []string
}

func (r NodeSelectorRequirement) Fields() []render.Field {
	return []render.Field{
		render.Attr("key", r.Key),
		render.Attr("operator", r.Operator),
		render.Attr("values", r.Values),
	}
}

type PreferredSchedulingTerm struct {
	Weight     int32
	Preference NodeSelectorTerm
}

func (t PreferredSchedulingTerm) Fields() []render.Field {
	return []render.Field{
		render.Attr("weight", t.Weight),
		render.Attr("preference", t.Preference),
	}
}

type PodAffinity struct {
	RequiredDuringSchedulingIgnoredDuringExecution  []PodAffinityTerm
	PreferredDuringSchedulingIgnoredDuringExecution []WeightedPodAffinityTerm
}

func (a PodAffinity) Fields() []render.Field {
	return []render.Field{
		render.Attr("required_during_scheduling_ignored_during_execution", a.RequiredDuringSchedulingIgnoredDuringExecution),
		render.Attr("preferred_during_scheduling_ignored_during_execution", a.PreferredDuringSchedulingIgnoredDuringExecution),
	}
}

type PodAntiAffinity struct {
	RequiredDuringSchedulingIgnoredDuringExecution  []PodAffinityTerm
	PreferredDuringSchedulingIgnoredDuringExecution []WeightedPodAffinityTerm
}

func (a PodAntiAffinity) Fields() []render.Field {
	return []render.Field{
		render.Attr("required_during_scheduling_ignored_during_execution", a.RequiredDuringSchedulingIgnoredDuringExecution),
		render.Attr("preferred_during_scheduling_ignored_during_execution", a.PreferredDuringSchedulingIgnoredDuringExecution),
	}
}

type PodAffinityTerm struct {
	TopologyKey       string
	LabelSelector     *LabelSelector
	Namespaces        []string
	NamespaceSelector *LabelSelector
}

func (t PodAffinityTerm) Fields() []render.Field {
	return []render.Field{
		render.Attr("label_selector", t.LabelSelector),
		render.Attr("namespaces", t.Namespaces),
		render.Attr("topology_key", t.TopologyKey),
		render.Attr("namespace_selector", t.NamespaceSelector),
	}
}

type WeightedPodAffinityTerm struct {
	Weight          int32
	PodAffinityTerm PodAffinityTerm
}

func (t WeightedPodAffinityTerm) Fields() []render.Field {
	return []render.Field{
		render.Attr("weight", t.Weight),
		render.Attr("pod_affinity_term", t.PodAffinityTerm),
	}
}
