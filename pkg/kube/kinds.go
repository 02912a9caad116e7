// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

const (
	GroupCore        = ""
	GroupApps        = "apps"
	GroupBatch       = "batch"
	GroupNetworking  = "networking.k8s.io"
	GroupRBAC        = "rbac.authorization.k8s.io"
	GroupPolicy      = "policy"
	GroupAutoscaling = "autoscaling"
)

var kindGroups = map[string]string{
	"Pod":                   GroupCore,
	"Service":               GroupCore,
	"ConfigMap":             GroupCore,
	"Secret":                GroupCore,
	"Namespace":             GroupCore,
	"ServiceAccount":        GroupCore,
	"PersistentVolumeClaim": GroupCore,
	"List":                  GroupCore,

	"Deployment":  GroupApps,
	"StatefulSet": GroupApps,
	"DaemonSet":   GroupApps,
	"ReplicaSet":  GroupApps,

	"Job":     GroupBatch,
	"CronJob": GroupBatch,

	"Ingress":       GroupNetworking,
	"IngressClass":  GroupNetworking,
	"NetworkPolicy": GroupNetworking,

	"Role":               GroupRBAC,
	"ClusterRole":        GroupRBAC,
	"RoleBinding":        GroupRBAC,
	"ClusterRoleBinding": GroupRBAC,

	"PodDisruptionBudget": GroupPolicy,

	"HorizontalPodAutoscaler": GroupAutoscaling,
}

// GroupForKind returns the API group of a known kind.
// Unknown kinds belong to the core group.
func GroupForKind(kind string) string {
	return kindGroups[kind]
}

// KnownKind reports whether kind has an entry in the group table.
func KnownKind(kind string) bool {
	_, found := kindGroups[kind]
	return found
}
