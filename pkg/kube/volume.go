// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

// Volume holds exactly one source; this is not enforced.
type Volume struct {
	Name                  string
	ConfigMap             *ConfigMapVolumeSource
	Secret                *SecretVolumeSource
	EmptyDir              *EmptyDirVolumeSource
	HostPath              *HostPathVolumeSource
	NFS                   *NFSVolumeSource
	PersistentVolumeClaim *PersistentVolumeClaimVolumeSource
	DownwardAPI           *DownwardAPIVolumeSource
	Projected             *ProjectedVolumeSource
}

func (v Volume) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", v.Name),
		render.Attr("config_map", v.ConfigMap),
		render.Attr("secret", v.Secret),
		render.Attr("empty_dir", v.EmptyDir),
		render.Attr("host_path", v.HostPath),
		render.Attr("nfs", v.NFS),
		render.Attr("persistent_volume_claim", v.PersistentVolumeClaim),
		render.Attr("downward_API", v.DownwardAPI),
		render.Attr("projected", v.Projected),
	}
}

type KeyToPath struct {
	Key  string
	Path string
	Mode *int32
}

func (k KeyToPath) Fields() []render.Field {
	return []render.Field{
		render.Attr("key", k.Key),
		render.Attr("path", k.Path),
		render.Attr("mode", k.Mode),
	}
}

type ConfigMapVolumeSource struct {
	Name        *string
	Items       []KeyToPath
	DefaultMode *int32
	Optional    *bool
}

func (s ConfigMapVolumeSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", s.Name),
		render.Attr("items", s.Items),
		render.Attr("default_mode", s.DefaultMode),
		render.Attr("optional", s.Optional),
	}
}

type SecretVolumeSource struct {
	SecretName  *string
	Items       []KeyToPath
	DefaultMode *int32
	Optional    *bool
}

func (s SecretVolumeSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("secret_name", s.SecretName),
		render.Attr("items", s.Items),
		render.Attr("default_mode", s.DefaultMode),
		render.Attr("optional", s.Optional),
	}
}

type EmptyDirVolumeSource struct {
	Medium    *string
	SizeLimit *string
}

func (s EmptyDirVolumeSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("medium", s.Medium),
		render.Attr("size_limit", s.SizeLimit),
	}
}

type HostPathVolumeSource struct {
	Path string
	Type *string
}

func (s HostPathVolumeSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("path", s.Path),
		render.Attr("type", s.Type),
	}
}

type NFSVolumeSource struct {
	Server   string
	Path     string
	ReadOnly *bool
}

func (s NFSVolumeSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("server", s.Server),
		render.Attr("path", s.Path),
		render.Attr("read_only", s.ReadOnly),
	}
}

type PersistentVolumeClaimVolumeSource struct {
	ClaimName string
	ReadOnly  *bool
}

func (s PersistentVolumeClaimVolumeSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("claim_name", s.ClaimName),
		render.Attr("read_only", s.ReadOnly),
	}
}

type DownwardAPIVolumeSource struct {
	Items       []DownwardAPIVolumeFile
	DefaultMode *int32
}

func (s DownwardAPIVolumeSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("items", s.Items),
		render.Attr("default_mode", s.DefaultMode),
	}
}

type DownwardAPIVolumeFile struct {
	Path             string
	FieldRef         *ObjectFieldSelector
	ResourceFieldRef *ResourceFieldSelector
	Mode             *int32
}

func (f DownwardAPIVolumeFile) Fields() []render.Field {
	return []render.Field{
		render.Attr("path", f.Path),
		render.Attr("field_ref", f.FieldRef),
		render.Attr("resource_field_ref", f.ResourceFieldRef),
		render.Attr("mode", f.Mode),
	}
}

type ProjectedVolumeSource struct {
	Sources     []VolumeProjection
	DefaultMode *int32
}

func (s ProjectedVolumeSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("sources", s.Sources),
		render.Attr("default_mode", s.DefaultMode),
	}
}

type VolumeProjection struct {
	Secret              *SecretProjection
	DownwardAPI         *DownwardAPIProjection
	ConfigMap           *ConfigMapProjection
	ServiceAccountToken *ServiceAccountTokenProjection
}

func (p VolumeProjection) Fields() []render.Field {
	return []render.Field{
		render.Attr("secret", p.Secret),
		render.Attr("downward_API", p.DownwardAPI),
		render.Attr("config_map", p.ConfigMap),
		render.Attr("service_account_token", p.ServiceAccountToken),
	}
}

type ConfigMapProjection struct {
	Name     *string
	Items    []KeyToPath
	Optional *bool
}

func (p ConfigMapProjection) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", p.Name),
		render.Attr("items", p.Items),
		render.Attr("optional", p.Optional),
	}
}

type SecretProjection struct {
	Name     *string
	Items    []KeyToPath
	Optional *bool
}

func (p SecretProjection) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", p.Name),
		render.Attr("items", p.Items),
		render.Attr("optional", p.Optional),
	}
}

type DownwardAPIProjection struct {
	Items []DownwardAPIVolumeFile
}

func (p DownwardAPIProjection) Fields() []render.Field {
	return []render.Field{render.Attr("items", p.Items)}
}

type ServiceAccountTokenProjection struct {
	Path              string
	Audience          *string
	ExpirationSeconds *int64
}

func (p ServiceAccountTokenProjection) Fields() []render.Field {
	return []render.Field{
		render.Attr("audience", p.Audience),
		render.Attr("expiration_seconds", p.ExpirationSeconds),
		render.Attr("path", p.Path),
	}
}
