// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/orderedmap"
	"carvel.dev/kchart/pkg/render"
)

type Pod struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *PodSpec
}

var _ render.Object = Pod{}

func (p Pod) ObjectKind() render.ObjectKind { return p.TypeMeta.objectKind("Pod") }

func (p Pod) Fields() []render.Field {
	return withMetadata(p.Metadata, render.Attr("spec", p.Spec))
}

type PodTemplateSpec struct {
	Metadata *ObjectMeta
	Spec     *PodSpec
}

func (t PodTemplateSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("metadata", t.Metadata),
		render.Attr("spec", t.Spec),
	}
}

type PodSpec struct {
	Containers                    []Container
	InitContainers                []Container
	Volumes                       []Volume
	RestartPolicy                 *string
	TerminationGracePeriodSeconds *int64
	ActiveDeadlineSeconds         *int64
	DNSPolicy                     *string
	NodeSelector                  *orderedmap.Map
	ServiceAccountName            *string
	AutomountServiceAccountToken  *bool
	NodeName                      *string
	HostNetwork                   *bool
	HostPID                       *bool
	HostIPC                       *bool
	SecurityContext               *PodSecurityContext
	ImagePullSecrets              []LocalObjectReference
	Hostname                      *string
	Subdomain                     *string
	Affinity                      *Affinity
	SchedulerName                 *string
	Tolerations                   []Toleration
	PriorityClassName             *string
	Priority                      *int32
}

func (s PodSpec) Fields() []render.Field {
	containers := s.Containers
	if containers == nil {
		containers = []Container{}
	}
	return []render.Field{
		render.Attr("containers", containers),
		render.Attr("init_containers", s.InitContainers),
		render.Attr("volumes", s.Volumes),
		render.Attr("restart_policy", s.RestartPolicy),
		render.Attr("termination_grace_period_seconds", s.TerminationGracePeriodSeconds),
		render.Attr("active_deadline_seconds", s.ActiveDeadlineSeconds),
		render.Attr("dns_policy", s.DNSPolicy),
		render.Attr("node_selector", s.NodeSelector),
		render.Attr("service_account_name", s.ServiceAccountName),
		render.Attr("automount_service_account_token", s.AutomountServiceAccountToken),
		render.Attr("node_name", s.NodeName),
		render.Attr("host_network", s.HostNetwork),
		render.Attr("host_PID", s.HostPID),
		render.Attr("host_IPC", s.HostIPC),
		render.Attr("security_context", s.SecurityContext),
		render.Attr("image_pull_secrets", s.ImagePullSecrets),
		render.Attr("hostname", s.Hostname),
		render.Attr("subdomain", s.Subdomain),
		render.Attr("affinity", s.Affinity),
		render.Attr("scheduler_name", s.SchedulerName),
		render.Attr("tolerations", s.Tolerations),
		render.Attr("priority_class_name", s.PriorityClassName),
		render.Attr("priority", s.Priority),
	}
}

type Container struct {
	Name                     string
	Image                    *string
	Command                  []string
	Args                     []string
	WorkingDir               *string
	Ports                    []ContainerPort
	EnvFrom                  []EnvFromSource
	Env                      []EnvVar
	Resources                *ResourceRequirements
	VolumeMounts             []VolumeMount
	LivenessProbe            *Probe
	ReadinessProbe           *Probe
	StartupProbe             *Probe
	TerminationMessagePath   *string
	TerminationMessagePolicy *string
	ImagePullPolicy          *string
	SecurityContext          *SecurityContext
	Stdin                    *bool
	TTY                      *bool
}

func (c Container) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", c.Name),
		render.Attr("image", c.Image),
		render.Attr("command", c.Command),
		render.Attr("args", c.Args),
		render.Attr("working_dir", c.WorkingDir),
		render.Attr("ports", c.Ports),
		render.Attr("env_from", c.EnvFrom),
		render.Attr("env", c.Env),
		render.Attr("resources", c.Resources),
		render.Attr("volume_mounts", c.VolumeMounts),
		render.Attr("liveness_probe", c.LivenessProbe),
		render.Attr("readiness_probe", c.ReadinessProbe),
		render.Attr("startup_probe", c.StartupProbe),
		render.Attr("termination_message_path", c.TerminationMessagePath),
		render.Attr("termination_message_policy", c.TerminationMessagePolicy),
		render.Attr("image_pull_policy", c.ImagePullPolicy),
		render.Attr("security_context", c.SecurityContext),
		render.Attr("stdin", c.Stdin),
		render.Attr("tty", c.TTY),
	}
}

type ContainerPort struct {
	ContainerPort int32
	Name          *string
	HostPort      *int32
	Protocol      *string
	HostIP        *string
}

func (p ContainerPort) Fields() []render.Field {
	return []render.Field{
		render.Attr("container_port", p.ContainerPort),
		render.Attr("name", p.Name),
		render.Attr("host_port", p.HostPort),
		render.Attr("protocol", p.Protocol),
		render.Attr("host_IP", p.HostIP),
	}
}

type EnvVar struct {
	Name      string
	Value     *string
	ValueFrom *EnvVarSource
}

func (e EnvVar) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", e.Name),
		render.Attr("value", e.Value),
		render.Attr("value_from", e.ValueFrom),
	}
}

type EnvVarSource struct {
	FieldRef         *ObjectFieldSelector
	ResourceFieldRef *ResourceFieldSelector
	ConfigMapKeyRef  *ConfigMapKeySelector
	SecretKeyRef     *SecretKeySelector
}

func (s EnvVarSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("field_ref", s.FieldRef),
		render.Attr("resource_field_ref", s.ResourceFieldRef),
		render.Attr("config_map_key_ref", s.ConfigMapKeyRef),
		render.Attr("secret_key_ref", s.SecretKeyRef),
	}
}

type ObjectFieldSelector struct {
	FieldPath  string
	APIVersion *string
}

func (s ObjectFieldSelector) Fields() []render.Field {
	return []render.Field{
		render.Attr("api_version", s.APIVersion),
		render.Attr("field_path", s.FieldPath),
	}
}

type ResourceFieldSelector struct {
	Resource      string
	ContainerName *string
	Divisor       *string
}

func (s ResourceFieldSelector) Fields() []render.Field {
	return []render.Field{
		render.Attr("container_name", s.ContainerName),
		render.Attr("resource", s.Resource),
		render.Attr("divisor", s.Divisor),
	}
}

type ConfigMapKeySelector struct {
	Key      string
	Name     *string
	Optional *bool
}

func (s ConfigMapKeySelector) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", s.Name),
		render.Attr("key", s.Key),
		render.Attr("optional", s.Optional),
	}
}

type SecretKeySelector struct {
	Key      string
	Name     *string
	Optional *bool
}

func (s SecretKeySelector) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", s.Name),
		render.Attr("key", s.Key),
		render.Attr("optional", s.Optional),
	}
}

type EnvFromSource struct {
	Prefix       *string
	ConfigMapRef *ConfigMapEnvSource
	SecretRef    *SecretEnvSource
}

func (s EnvFromSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("prefix", s.Prefix),
		render.Attr("config_map_ref", s.ConfigMapRef),
		render.Attr("secret_ref", s.SecretRef),
	}
}

type ConfigMapEnvSource struct {
	Name     *string
	Optional *bool
}

func (s ConfigMapEnvSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", s.Name),
		render.Attr("optional", s.Optional),
	}
}

type SecretEnvSource struct {
	Name     *string
	Optional *bool
}

func (s SecretEnvSource) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", s.Name),
		render.Attr("optional", s.Optional),
	}
}

type VolumeMount struct {
	Name             string
	MountPath        string
	ReadOnly         *bool
	SubPath          *string
	MountPropagation *string
}

func (m VolumeMount) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", m.Name),
		render.Attr("read_only", m.ReadOnly),
		render.Attr("mount_path", m.MountPath),
		render.Attr("sub_path", m.SubPath),
		render.Attr("mount_propagation", m.MountPropagation),
	}
}

// ResourceRequirements holds quantities keyed by resource name
// (e.g. "cpu": "100m"), which are emitted verbatim.
type ResourceRequirements struct {
	Limits   *orderedmap.Map
	Requests *orderedmap.Map
}

func (r ResourceRequirements) Fields() []render.Field {
	return []render.Field{
		render.Attr("limits", r.Limits),
		render.Attr("requests", r.Requests),
	}
}

type LocalObjectReference struct {
	Name *string
}

func (r LocalObjectReference) Fields() []render.Field {
	return []render.Field{render.Attr("name", r.Name)}
}

type ObjectReference struct {
	Kind            *string
	Namespace       *string
	Name            *string
	UID             *string
	APIVersion      *string
	ResourceVersion *string
	FieldPath       *string
}

func (r ObjectReference) Fields() []render.Field {
	return []render.Field{
		render.Attr("kind", r.Kind),
		render.Attr("namespace", r.Namespace),
		render.Attr("name", r.Name),
		render.KeyOverride("uid", r.UID),
		render.Attr("api_version", r.APIVersion),
		render.Attr("resource_version", r.ResourceVersion),
		render.Attr("field_path", r.FieldPath),
	}
}

type SecurityContext struct {
	Capabilities             *Capabilities
	Privileged               *bool
	RunAsUser                *int64
	RunAsGroup               *int64
	RunAsNonRoot             *bool
	ReadOnlyRootFilesystem   *bool
	AllowPrivilegeEscalation *bool
}

func (c SecurityContext) Fields() []render.Field {
	return []render.Field{
		render.Attr("capabilities", c.Capabilities),
		render.Attr("privileged", c.Privileged),
		render.Attr("run_as_user", c.RunAsUser),
		render.Attr("run_as_group", c.RunAsGroup),
		render.Attr("run_as_non_root", c.RunAsNonRoot),
		render.Attr("read_only_root_filesystem", c.ReadOnlyRootFilesystem),
		render.Attr("allow_privilege_escalation", c.AllowPrivilegeEscalation),
	}
}

type Capabilities struct {
	Add  []string
	Drop []string
}

func (c Capabilities) Fields() []render.Field {
	return []render.Field{
		render.Attr("add", c.Add),
		render.Attr("drop", c.Drop),
	}
}

type PodSecurityContext struct {
	RunAsUser          *int64
	RunAsGroup         *int64
	RunAsNonRoot       *bool
	SupplementalGroups []int64
	FSGroup            *int64
}

func (c PodSecurityContext) Fields() []render.Field {
	return []render.Field{
		render.Attr("run_as_user", c.RunAsUser),
		render.Attr("run_as_group", c.RunAsGroup),
		render.Attr("run_as_non_root", c.RunAsNonRoot),
		render.Attr("supplemental_groups", c.SupplementalGroups),
		render.Attr("fs_group", c.FSGroup),
	}
}

type Toleration struct {
	Key               *string
	Operator          *string
	Value             *string
	Effect            *string
	TolerationSeconds *int64
}

func (t Toleration) Fields() []render.Field {
	return []render.Field{
		render.Attr("key", t.Key),
		render.Attr("operator", t.Operator),
		render.Attr("value", t.Value),
		render.Attr("effect", t.Effect),
		render.Attr("toleration_seconds", t.TolerationSeconds),
	}
}
