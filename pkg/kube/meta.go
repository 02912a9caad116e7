// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/orderedmap"
	"carvel.dev/kchart/pkg/render"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// TypeMeta is embedded in every top-level kind.
// Empty Kind means the Go type name; empty APIVersion means
// the version is resolved when rendering.
type TypeMeta struct {
	APIVersion string
	Kind       string
}

// NewTypeMeta captures the API version resolved for kind right now,
// so later changes to the defaults do not affect the object.
func NewTypeMeta(kind string, apiVersions render.APIVersionResolver) TypeMeta {
	return TypeMeta{
		APIVersion: apiVersions.ResolveAPIVersion(GroupForKind(kind), ""),
		Kind:       kind,
	}
}

func (t TypeMeta) objectKind(typeName string) render.ObjectKind {
	kind := t.Kind
	if len(kind) == 0 {
		kind = typeName
	}
	return render.ObjectKind{
		GroupKind:  schema.GroupKind{Group: GroupForKind(kind), Kind: kind},
		APIVersion: t.APIVersion,
	}
}

func withMetadata(meta *ObjectMeta, fields ...render.Field) []render.Field {
	return append([]render.Field{render.Attr("metadata", meta)}, fields...)
}

type ObjectMeta struct {
	Name            *string
	GenerateName    *string
	Namespace       *string
	Labels          *orderedmap.Map
	Annotations     *orderedmap.Map
	OwnerReferences []OwnerReference
	Finalizers      []string
}

func (m ObjectMeta) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", m.Name),
		render.Attr("generate_name", m.GenerateName),
		render.Attr("namespace", m.Namespace),
		render.Attr("labels", m.Labels),
		render.Attr("annotations", m.Annotations),
		render.Attr("owner_references", m.OwnerReferences),
		render.Attr("finalizers", m.Finalizers),
	}
}

type OwnerReference struct {
	APIVersion         string
	Kind               string
	Name               string
	UID                string
	Controller         *bool
	BlockOwnerDeletion *bool
}

func (r OwnerReference) Fields() []render.Field {
	return []render.Field{
		render.Attr("api_version", r.APIVersion),
		render.Attr("kind", r.Kind),
		render.Attr("name", r.Name),
		render.KeyOverride("uid", r.UID),
		render.Attr("controller", r.Controller),
		render.Attr("block_owner_deletion", r.BlockOwnerDeletion),
	}
}

type LabelSelector struct {
	MatchLabels      *orderedmap.Map
	MatchExpressions []LabelSelectorRequirement
}

func (s LabelSelector) Fields() []render.Field {
	return []render.Field{
		render.Attr("match_labels", s.MatchLabels),
		render.Attr("match_expressions", s.MatchExpressions),
	}
}

type LabelSelectorRequirement struct {
	Key      string
	Operator string
	Values   []string
}

func (r LabelSelectorRequirement) Fields() []render.Field {
	return []render.Field{
		render.Attr("key", r.Key),
		render.Attr("operator", r.Operator),
		render.Attr("values", r.Values),
	}
}

type ListMeta struct {
	ResourceVersion    *string
	Continue           *string
	RemainingItemCount *int64
}

func (m ListMeta) Fields() []render.Field {
	return []render.Field{
		render.Attr("resource_version", m.ResourceVersion),
		render.KeyOverride("continue", m.Continue),
		render.Attr("remaining_item_count", m.RemainingItemCount),
	}
}

// List groups objects of any kind into one document.
type List struct {
	TypeMeta
	Metadata *ListMeta
	Items    []render.Object
}

var _ render.Object = List{}

func (l List) ObjectKind() render.ObjectKind { return l.TypeMeta.objectKind("List") }

func (l List) Fields() []render.Field {
	items := l.Items
	if items == nil {
		items = []render.Object{}
	}
	return []render.Field{
		render.Attr("metadata", l.Metadata),
		render.Attr("items", items),
	}
}
