// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

type Ingress struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *IngressSpec
}

var _ render.Object = Ingress{}

func (i Ingress) ObjectKind() render.ObjectKind { return i.TypeMeta.objectKind("Ingress") }

func (i Ingress) Fields() []render.Field {
	return withMetadata(i.Metadata, render.Attr("spec", i.Spec))
}

type IngressSpec struct {
	IngressClassName *string
	DefaultBackend   *IngressBackend
	TLS              []IngressTLS
	Rules            []IngressRule
}

func (s IngressSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("ingress_class_name", s.IngressClassName),
		render.Attr("default_backend", s.DefaultBackend),
		render.Attr("tls", s.TLS),
		render.Attr("rules", s.Rules),
	}
}

type IngressBackend struct {
	Service  *IngressServiceBackend
	Resource *TypedLocalObjectReference
}

func (b IngressBackend) Fields() []render.Field {
	return []render.Field{
		render.Attr("service", b.Service),
		render.Attr("resource", b.Resource),
	}
}

type IngressServiceBackend struct {
	Name string
	Port *ServiceBackendPort
}

func (b IngressServiceBackend) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", b.Name),
		render.Attr("port", b.Port),
	}
}

// ServiceBackendPort refers to a port either by Name or by Number.
type ServiceBackendPort struct {
	Name   *string
	Number *int32
}

func (p ServiceBackendPort) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", p.Name),
		render.Attr("number", p.Number),
	}
}

type TypedLocalObjectReference struct {
	Kind     string
	Name     string
	APIGroup *string
}

func (r TypedLocalObjectReference) Fields() []render.Field {
	return []render.Field{
		render.Attr("api_group", r.APIGroup),
		render.Attr("kind", r.Kind),
		render.Attr("name", r.Name),
	}
}

type IngressTLS struct {
	Hosts      []string
	SecretName *string
}

func (t IngressTLS) Fields() []render.Field {
	return []render.Field{
		render.Attr("hosts", t.Hosts),
		render.Attr("secret_name", t.SecretName),
	}
}

type IngressRule struct {
	Host *string
	HTTP *HTTPIngressRuleValue
}

func (r IngressRule) Fields() []render.Field {
	return []render.Field{
		render.Attr("host", r.Host),
		render.Attr("http", r.HTTP),
	}
}

type HTTPIngressRuleValue struct {
	Paths []HTTPIngressPath
}

func (v HTTPIngressRuleValue) Fields() []render.Field {
	return []render.Field{render.Attr("paths", v.Paths)}
}

type HTTPIngressPath struct {
	PathType string
	Backend  IngressBackend
	Path     *string
}

func (p HTTPIngressPath) Fields() []render.Field {
	return []render.Field{
		render.Attr("path", p.Path),
		render.Attr("path_type", p.PathType),
		render.Attr("backend", p.Backend),
	}
}

type NetworkPolicy struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *NetworkPolicySpec
}

var _ render.Object = NetworkPolicy{}

func (p NetworkPolicy) ObjectKind() render.ObjectKind { return p.TypeMeta.objectKind("NetworkPolicy") }

func (p NetworkPolicy) Fields() []render.Field {
	return withMetadata(p.Metadata, render.Attr("spec", p.Spec))
}

type NetworkPolicySpec struct {
	PodSelector LabelSelector
	Ingress     []NetworkPolicyIngressRule
	Egress      []NetworkPolicyEgressRule
	PolicyTypes []string
}

func (s NetworkPolicySpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("pod_selector", s.PodSelector),
		render.Attr("ingress", s.Ingress),
		render.Attr("egress", s.Egress),
		render.Attr("policy_types", s.PolicyTypes),
	}
}

type NetworkPolicyIngressRule struct {
	Ports []NetworkPolicyPort
	From  []NetworkPolicyPeer
}

func (r NetworkPolicyIngressRule) Fields() []render.Field {
	return []render.Field{
		render.Attr("ports", r.Ports),
		render.Attr("from", r.From),
	}
}

type NetworkPolicyEgressRule struct {
	Ports []NetworkPolicyPort
	To    []NetworkPolicyPeer
}

func (r NetworkPolicyEgressRule) Fields() []render.Field {
	return []render.Field{
		render.Attr("ports", r.Ports),
		render.Attr("to", r.To),
	}
}

type NetworkPolicyPeer struct {
	PodSelector       *LabelSelector
	NamespaceSelector *LabelSelector
	IPBlock           *IPBlock
}

func (p NetworkPolicyPeer) Fields() []render.Field {
	return []render.Field{
		render.Attr("pod_selector", p.PodSelector),
		render.Attr("namespace_selector", p.NamespaceSelector),
		render.Attr("ip_block", p.IPBlock),
	}
}

type NetworkPolicyPort struct {
	Protocol *string
	Port     *IntOrString
	EndPort  *int32
}

func (p NetworkPolicyPort) Fields() []render.Field {
	return []render.Field{
		render.Attr("protocol", p.Protocol),
		render.Attr("port", p.Port),
		render.Attr("end_port", p.EndPort),
	}
}

type IPBlock struct {
	CIDR   string
	Except []string
}

func (b IPBlock) Fields() []render.Field {
	return []render.Field{
		render.Attr("cidr", b.CIDR),
		render.KeyOverride("except", b.Except),
	}
}
