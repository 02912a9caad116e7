// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube_test

import (
	"strings"
	"testing"

	"carvel.dev/kchart/pkg/apiversion"
	"carvel.dev/kchart/pkg/kube"
	"carvel.dev/kchart/pkg/orderedmap"
	"carvel.dev/kchart/pkg/render"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestExplicitVersionAndKind(t *testing.T) {
	obj := kube.Pod{
		TypeMeta: kube.TypeMeta{APIVersion: "v1", Kind: "Deployment"},
		Metadata: &kube.ObjectMeta{Name: ptr.To("test")},
	}

	assertRenders(t, newRenderer("v1"), obj, `apiVersion: v1
kind: Deployment
metadata:
  name: test
`)
}

func TestObjectMetaOmitsUnset(t *testing.T) {
	meta := kube.ObjectMeta{
		Namespace:   ptr.To("default"),
		Annotations: orderedmap.NewStringMap("role", "user", "type", "worker"),
	}

	assertRenders(t, newRenderer("v1"), meta, `namespace: default
annotations:
  role: user
  type: worker
`)
}

func TestDeployment(t *testing.T) {
	labels := orderedmap.NewStringMap("app", "frontend", "tier", "web")

	obj := kube.Deployment{
		Metadata: &kube.ObjectMeta{Name: ptr.To("frontend"), Labels: labels},
		Spec: &kube.DeploymentSpec{
			Replicas: ptr.To[int32](3),
			Selector: kube.LabelSelector{MatchLabels: labels},
			Strategy: &kube.DeploymentStrategy{
				Type: ptr.To("RollingUpdate"),
				RollingUpdate: &kube.RollingUpdateDeployment{
					MaxUnavailable: kube.FromInt(1),
					MaxSurge:       kube.FromString("25%"),
				},
			},
			Template: kube.PodTemplateSpec{
				Metadata: &kube.ObjectMeta{Labels: labels},
				Spec: &kube.PodSpec{
					Containers: []kube.Container{{
						Name:  "php-redis",
						Image: ptr.To("gcr.io/google-samples/gb-frontend:v4"),
						Ports: []kube.ContainerPort{{ContainerPort: 80}},
						Env: []kube.EnvVar{{
							Name: "GET_HOSTS_FROM",
							ValueFrom: &kube.EnvVarSource{
								ConfigMapKeyRef: &kube.ConfigMapKeySelector{Name: ptr.To("env"), Key: "hosts"},
							},
						}},
						Resources: &kube.ResourceRequirements{
							Requests: orderedmap.NewStringMap("cpu", "100m", "memory", "100Mi"),
						},
						ReadinessProbe: &kube.Probe{
							HTTPGet:       &kube.HTTPGetAction{Path: ptr.To("/healthz"), Port: *kube.FromString("http")},
							PeriodSeconds: ptr.To[int32](5),
						},
					}},
					TerminationGracePeriodSeconds: ptr.To[int64](30),
				},
			},
		},
	}

	assertRenders(t, newRenderer("v1"), obj, `apiVersion: apps/v1
kind: Deployment
metadata:
  name: frontend
  labels:
    app: frontend
    tier: web
spec:
  replicas: 3
  selector:
    matchLabels:
      app: frontend
      tier: web
  template:
    metadata:
      labels:
        app: frontend
        tier: web
    spec:
      containers:
      - name: php-redis
        image: gcr.io/google-samples/gb-frontend:v4
        ports:
        - containerPort: 80
        env:
        - name: GET_HOSTS_FROM
          valueFrom:
            configMapKeyRef:
              name: env
              key: hosts
        resources:
          requests:
            cpu: 100m
            memory: 100Mi
        readinessProbe:
          httpGet:
            path: /healthz
            port: http
          periodSeconds: 5
      terminationGracePeriodSeconds: 30
  strategy:
    type: RollingUpdate
    rollingUpdate:
      maxUnavailable: 1
      maxSurge: 25%
`)
}

func TestService(t *testing.T) {
	obj := kube.Service{
		Metadata: &kube.ObjectMeta{Name: ptr.To("redis")},
		Spec: &kube.ServiceSpec{
			Ports: []kube.ServicePort{{
				Port:       6379,
				TargetPort: kube.FromInt(6379),
				Protocol:   ptr.To("TCP"),
			}},
			Selector:  orderedmap.NewStringMap("app", "redis"),
			ClusterIP: ptr.To("None"),
		},
	}

	assertRenders(t, newRenderer("v1"), obj, `apiVersion: v1
kind: Service
metadata:
  name: redis
spec:
  ports:
  - protocol: TCP
    port: 6379
    targetPort: 6379
  selector:
    app: redis
  clusterIP: None
`)
}

func TestReservedWordKeys(t *testing.T) {
	policy := kube.NetworkPolicy{
		Metadata: &kube.ObjectMeta{Name: ptr.To("deny")},
		Spec: &kube.NetworkPolicySpec{
			PodSelector: kube.LabelSelector{},
			Ingress: []kube.NetworkPolicyIngressRule{{
				From: []kube.NetworkPolicyPeer{{
					IPBlock: &kube.IPBlock{CIDR: "10.0.0.0/8", Except: []string{"10.1.0.0/16"}},
				}},
			}},
		},
	}

	assertRenders(t, newRenderer("v1"), policy, `apiVersion: networking.k8s.io/v1
kind: NetworkPolicy
metadata:
  name: deny
spec:
  podSelector: {}
  ingress:
  - from:
    - ipBlock:
        cidr: 10.0.0.0/8
        except:
        - 10.1.0.0/16
`)

	list := kube.List{
		Metadata: &kube.ListMeta{Continue: ptr.To("abc"), ResourceVersion: ptr.To("7")},
		Items:    []render.Object{kube.ConfigMap{Metadata: &kube.ObjectMeta{Name: ptr.To("cm")}}},
	}

	assertRenders(t, newRenderer("v1"), list, `apiVersion: v1
kind: List
metadata:
  resourceVersion: "7"
  continue: abc
items:
- apiVersion: v1
  kind: ConfigMap
  metadata:
    name: cm
`)
}

func TestRBAC(t *testing.T) {
	defaults := apiversion.New("v1")
	objs := []interface{}{
		kube.Role{
			Metadata: &kube.ObjectMeta{Name: ptr.To("reader"), Namespace: ptr.To("default")},
			Rules: []kube.PolicyRule{{
				APIGroups: []string{""},
				Resources: []string{"pods"},
				Verbs:     []string{"get", "list"},
			}},
		},
		kube.ClusterRole{
			Metadata: &kube.ObjectMeta{Name: ptr.To("metrics")},
			Rules:    []kube.PolicyRule{{NonResourceURLs: []string{"/metrics"}, Verbs: []string{"get"}}},
		},
		kube.RoleBinding{
			Metadata: &kube.ObjectMeta{Name: ptr.To("reader")},
			RoleRef:  kube.RoleRef{APIGroup: "rbac.authorization.k8s.io", Kind: "Role", Name: "reader"},
			Subjects: []kube.Subject{{Kind: "ServiceAccount", Name: "default", Namespace: ptr.To("default")}},
		},
	}

	bs, err := render.NewRenderer(render.RendererOpts{APIVersions: defaults}).AsDocuments(objs)
	require.NoError(t, err)

	assertEqualYAML(t, `---
apiVersion: rbac.authorization.k8s.io/v1
kind: Role
metadata:
  name: reader
  namespace: default
rules:
- verbs:
  - get
  - list
  apiGroups:
  - ""
  resources:
  - pods
---
apiVersion: rbac.authorization.k8s.io/v1
kind: ClusterRole
metadata:
  name: metrics
rules:
- verbs:
  - get
  nonResourceURLs:
  - /metrics
---
apiVersion: rbac.authorization.k8s.io/v1
kind: RoleBinding
metadata:
  name: reader
subjects:
- kind: ServiceAccount
  name: default
  namespace: default
roleRef:
  apiGroup: rbac.authorization.k8s.io
  kind: Role
  name: reader
`, string(bs))
}

func TestGroupForKind(t *testing.T) {
	assert.Equal(t, "", kube.GroupForKind("Pod"))
	assert.Equal(t, "apps", kube.GroupForKind("Deployment"))
	assert.Equal(t, "batch", kube.GroupForKind("CronJob"))
	assert.Equal(t, "rbac.authorization.k8s.io", kube.GroupForKind("Role"))
	assert.Equal(t, "policy", kube.GroupForKind("PodDisruptionBudget"))
	assert.Equal(t, "", kube.GroupForKind("SomethingElse"))
	assert.False(t, kube.KnownKind("SomethingElse"))
}

func TestDefaultVersionPerGroup(t *testing.T) {
	defaults := apiversion.New("v1").SetGroupVersion(kube.GroupAutoscaling, "v2")
	renderer := render.NewRenderer(render.RendererOpts{APIVersions: defaults})

	objs := []render.Object{
		kube.Pod{},
		kube.StatefulSet{},
		kube.Job{},
		kube.Ingress{},
		kube.HorizontalPodAutoscaler{},
		kube.PodDisruptionBudget{},
	}
	expected := []string{"v1", "apps/v1", "batch/v1", "networking.k8s.io/v1", "autoscaling/v2", "policy/v1"}

	for i, obj := range objs {
		plain, err := renderer.AsPlain(obj)
		require.NoError(t, err)
		apiVersion, _ := plain.(*orderedmap.Map).Get("apiVersion")
		assert.Equal(t, expected[i], apiVersion)
	}
}

func TestNewTypeMetaCapturesVersion(t *testing.T) {
	defaults := apiversion.New("v1")

	before := kube.DaemonSet{TypeMeta: kube.NewTypeMeta("DaemonSet", defaults)}
	defaults.SetVersion("v1beta2")
	after := kube.DaemonSet{TypeMeta: kube.NewTypeMeta("DaemonSet", defaults)}

	renderer := render.NewRenderer(render.RendererOpts{APIVersions: defaults})
	assertRenders(t, renderer, before, "apiVersion: apps/v1\nkind: DaemonSet\n")
	assertRenders(t, renderer, after, "apiVersion: apps/v1beta2\nkind: DaemonSet\n")
}

func TestStatefulSetClaimTemplatesHaveNoHeader(t *testing.T) {
	obj := kube.StatefulSet{
		TypeMeta: kube.TypeMeta{APIVersion: "apps/v1"},
		Spec: &kube.StatefulSetSpec{
			ServiceName: "db",
			Selector:    kube.LabelSelector{MatchLabels: orderedmap.NewStringMap("app", "db")},
			Template:    kube.PodTemplateSpec{},
			VolumeClaimTemplates: []kube.PersistentVolumeClaim{{
				Metadata: &kube.ObjectMeta{Name: ptr.To("data")},
				Spec: &kube.PersistentVolumeClaimSpec{
					AccessModes: []string{"ReadWriteOnce"},
					Resources:   &kube.ResourceRequirements{Requests: orderedmap.NewStringMap("storage", "1Gi")},
				},
			}},
		},
	}

	assertRenders(t, newRenderer("v1"), obj, `apiVersion: apps/v1
kind: StatefulSet
spec:
  selector:
    matchLabels:
      app: db
  template: {}
  volumeClaimTemplates:
  - metadata:
      name: data
    spec:
      accessModes:
      - ReadWriteOnce
      resources:
        requests:
          storage: 1Gi
  serviceName: db
`)
}

func TestPodSpecAlwaysListsContainers(t *testing.T) {
	assertRenders(t, newRenderer("v1"), kube.PodSpec{RestartPolicy: ptr.To("Never")}, "containers: []\nrestartPolicy: Never\n")
}

func newRenderer(version string) render.Renderer {
	return render.NewRenderer(render.RendererOpts{APIVersions: apiversion.New(version)})
}

func assertRenders(t *testing.T, renderer render.Renderer, val interface{}, expectedYAML string) {
	t.Helper()

	bs, err := renderer.AsBytes(val)
	require.NoError(t, err)

	assertEqualYAML(t, expectedYAML, string(bs))
}

func assertEqualYAML(t *testing.T, expectedYAML, actualYAML string) {
	t.Helper()

	if expectedYAML != actualYAML {
		diff := difflib.PPDiff(strings.Split(expectedYAML, "\n"), strings.Split(actualYAML, "\n"))
		t.Fatalf("Not equal; diff expected...actual:\n%v\n", diff)
	}
}
