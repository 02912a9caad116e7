// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/orderedmap"
	"carvel.dev/kchart/pkg/render"
)

type Service struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *ServiceSpec
}

var _ render.Object = Service{}

func (s Service) ObjectKind() render.ObjectKind { return s.TypeMeta.objectKind("Service") }

func (s Service) Fields() []render.Field {
	return withMetadata(s.Metadata, render.Attr("spec", s.Spec))
}

type ServiceSpec struct {
	Ports                    []ServicePort
	Selector                 *orderedmap.Map
	ClusterIP                *string
	Type                     *string
	ExternalIPs              []string
	SessionAffinity          *string
	LoadBalancerIP           *string
	LoadBalancerSourceRanges []string
	ExternalName             *string
	ExternalTrafficPolicy    *string
	PublishNotReadyAddresses *bool
}

func (s ServiceSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("ports", s.Ports),
		render.Attr("selector", s.Selector),
		render.Attr("cluster_IP", s.ClusterIP),
		render.Attr("type", s.Type),
		render.Attr("external_IPs", s.ExternalIPs),
		render.Attr("session_affinity", s.SessionAffinity),
		render.Attr("load_balancer_IP", s.LoadBalancerIP),
		render.Attr("load_balancer_source_ranges", s.LoadBalancerSourceRanges),
		render.Attr("external_name", s.ExternalName),
		render.Attr("external_traffic_policy", s.ExternalTrafficPolicy),
		render.Attr("publish_not_ready_addresses", s.PublishNotReadyAddresses),
	}
}

type ServicePort struct {
	Port       int32
	Name       *string
	Protocol   *string
	TargetPort *IntOrString
	NodePort   *int32
}

func (p ServicePort) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", p.Name),
		render.Attr("protocol", p.Protocol),
		render.Attr("port", p.Port),
		render.Attr("target_port", p.TargetPort),
		render.Attr("node_port", p.NodePort),
	}
}

type ConfigMap struct {
	TypeMeta
	Metadata   *ObjectMeta
	Data       *orderedmap.Map
	BinaryData *orderedmap.Map
	Immutable  *bool
}

var _ render.Object = ConfigMap{}

func (c ConfigMap) ObjectKind() render.ObjectKind { return c.TypeMeta.objectKind("ConfigMap") }

func (c ConfigMap) Fields() []render.Field {
	return withMetadata(c.Metadata,
		render.Attr("data", c.Data),
		render.Attr("binary_data", c.BinaryData),
		render.Attr("immutable", c.Immutable),
	)
}

type Secret struct {
	TypeMeta
	Metadata *ObjectMeta
	Type     *string
	// Data values are expected to be base64 encoded already.
	Data       *orderedmap.Map
	StringData *orderedmap.Map
	Immutable  *bool
}

var _ render.Object = Secret{}

func (s Secret) ObjectKind() render.ObjectKind { return s.TypeMeta.objectKind("Secret") }

func (s Secret) Fields() []render.Field {
	return withMetadata(s.Metadata,
		render.Attr("type", s.Type),
		render.Attr("data", s.Data),
		render.Attr("string_data", s.StringData),
		render.Attr("immutable", s.Immutable),
	)
}

type Namespace struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *NamespaceSpec
}

var _ render.Object = Namespace{}

func (n Namespace) ObjectKind() render.ObjectKind { return n.TypeMeta.objectKind("Namespace") }

func (n Namespace) Fields() []render.Field {
	return withMetadata(n.Metadata, render.Attr("spec", n.Spec))
}

type NamespaceSpec struct {
	Finalizers []string
}

func (s NamespaceSpec) Fields() []render.Field {
	return []render.Field{render.Attr("finalizers", s.Finalizers)}
}

type ServiceAccount struct {
	TypeMeta
	Metadata                     *ObjectMeta
	Secrets                      []ObjectReference
	ImagePullSecrets             []LocalObjectReference
	AutomountServiceAccountToken *bool
}

var _ render.Object = ServiceAccount{}

func (s ServiceAccount) ObjectKind() render.ObjectKind {
	return s.TypeMeta.objectKind("ServiceAccount")
}

func (s ServiceAccount) Fields() []render.Field {
	return withMetadata(s.Metadata,
		render.Attr("secrets", s.Secrets),
		render.Attr("image_pull_secrets", s.ImagePullSecrets),
		render.Attr("automount_service_account_token", s.AutomountServiceAccountToken),
	)
}

type PersistentVolumeClaim struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *PersistentVolumeClaimSpec
}

var _ render.Object = PersistentVolumeClaim{}

func (c PersistentVolumeClaim) ObjectKind() render.ObjectKind {
	return c.TypeMeta.objectKind("PersistentVolumeClaim")
}

func (c PersistentVolumeClaim) Fields() []render.Field {
	return withMetadata(c.Metadata, render.Attr("spec", c.Spec))
}

type PersistentVolumeClaimSpec struct {
	AccessModes      []string
	Selector         *LabelSelector
	Resources        *ResourceRequirements
	VolumeName       *string
	StorageClassName *string
	VolumeMode       *string
}

func (s PersistentVolumeClaimSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("access_modes", s.AccessModes),
		render.Attr("selector", s.Selector),
		render.Attr("resources", s.Resources),
		render.Attr("volume_name", s.VolumeName),
		render.Attr("storage_class_name", s.StorageClassName),
		render.Attr("volume_mode", s.VolumeMode),
	}
}
