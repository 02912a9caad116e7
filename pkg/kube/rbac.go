// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

type Role struct {
	TypeMeta
	Metadata *ObjectMeta
	Rules    []PolicyRule
}

var _ render.Object = Role{}

func (r Role) ObjectKind() render.ObjectKind { return r.TypeMeta.objectKind("Role") }

func (r Role) Fields() []render.Field {
	return withMetadata(r.Metadata, render.Attr("rules", r.Rules))
}

type ClusterRole struct {
	TypeMeta
	Metadata        *ObjectMeta
	Rules           []PolicyRule
	AggregationRule *AggregationRule
}

var _ render.Object = ClusterRole{}

func (r ClusterRole) ObjectKind() render.ObjectKind { return r.TypeMeta.objectKind("ClusterRole") }

func (r ClusterRole) Fields() []render.Field {
	return withMetadata(r.Metadata,
		render.Attr("rules", r.Rules),
		render.Attr("aggregation_rule", r.AggregationRule),
	)
}

type AggregationRule struct {
	ClusterRoleSelectors []LabelSelector
}

func (r AggregationRule) Fields() []render.Field {
	return []render.Field{render.Attr("cluster_role_selectors", r.ClusterRoleSelectors)}
}

type PolicyRule struct {
	Verbs           []string
	APIGroups       []string
	Resources       []string
	ResourceNames   []string
	NonResourceURLs []string
}

func (r PolicyRule) Fields() []render.Field {
	return []render.Field{
		render.Attr("verbs", r.Verbs),
		render.Attr("api_groups", r.APIGroups),
		render.Attr("resources", r.Resources),
		render.Attr("resource_names", r.ResourceNames),
		render.Attr("non_resource_URLs", r.NonResourceURLs),
	}
}

type RoleBinding struct {
	TypeMeta
	Metadata *ObjectMeta
	RoleRef  RoleRef
	Subjects []Subject
}

var _ render.Object = RoleBinding{}

func (b RoleBinding) ObjectKind() render.ObjectKind { return b.TypeMeta.objectKind("RoleBinding") }

func (b RoleBinding) Fields() []render.Field {
	return withMetadata(b.Metadata,
		render.Attr("subjects", b.Subjects),
		render.Attr("role_ref", b.RoleRef),
	)
}

type ClusterRoleBinding struct {
	TypeMeta
	Metadata *ObjectMeta
	RoleRef  RoleRef
	Subjects []Subject
}

var _ render.Object = ClusterRoleBinding{}

func (b ClusterRoleBinding) ObjectKind() render.ObjectKind {
	return b.TypeMeta.objectKind("ClusterRoleBinding")
}

func (b ClusterRoleBinding) Fields() []render.Field {
	return withMetadata(b.Metadata,
		render.Attr("subjects", b.Subjects),
		render.Attr("role_ref", b.RoleRef),
	)
}

type RoleRef struct {
	APIGroup string
	Kind     string
	Name     string
}

func (r RoleRef) Fields() []render.Field {
	return []render.Field{
		render.Attr("api_group", r.APIGroup),
		render.Attr("kind", r.Kind),
		render.Attr("name", r.Name),
	}
}

type Subject struct {
	Kind      string
	Name      string
	APIGroup  *string
	Namespace *string
}

func (s Subject) Fields() []render.Field {
	return []render.Field{
		render.Attr("kind", s.Kind),
		render.Attr("api_group", s.APIGroup),
		render.Attr("name", s.Name),
		render.Attr("namespace", s.Namespace),
	}
}
