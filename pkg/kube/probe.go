// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

// Probe holds exactly one handler (Exec, HTTPGet or TCPSocket);
// this is not enforced.
type Probe struct {
	Exec                *ExecAction
	HTTPGet             *HTTPGetAction
	TCPSocket           *TCPSocketAction
	InitialDelaySeconds *int32
	TimeoutSeconds      *int32
	PeriodSeconds       *int32
	SuccessThreshold    *int32
	FailureThreshold    *int32
}

func (p Probe) Fields() []render.Field {
	return []render.Field{
		render.Attr("exec", p.Exec),
		render.Attr("http_get", p.HTTPGet),
		render.Attr("tcp_socket", p.TCPSocket),
		render.Attr("initial_delay_seconds", p.InitialDelaySeconds),
		render.Attr("timeout_seconds", p.TimeoutSeconds),
		render.Attr("period_seconds", p.PeriodSeconds),
		render.Attr("success_threshold", p.SuccessThreshold),
		render.Attr("failure_threshold", p.FailureThreshold),
	}
}

type ExecAction struct {
	Command []string
}

func (a ExecAction) Fields() []render.Field {
	return []render.Field{render.Attr("command", a.Command)}
}

type HTTPGetAction struct {
	Port        IntOrString
	Path        *string
	Host        *string
	Scheme      *string
	HTTPHeaders []HTTPHeader
}

func (a HTTPGetAction) Fields() []render.Field {
	return []render.Field{
		render.Attr("path", a.Path),
		render.Attr("port", a.Port),
		render.Attr("host", a.Host),
		render.Attr("scheme", a.Scheme),
		render.Attr("http_headers", a.HTTPHeaders),
	}
}

type HTTPHeader struct {
	Name  string
	Value string
}

func (h HTTPHeader) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", h.Name),
		render.Attr("value", h.Value),
	}
}

type TCPSocketAction struct {
	Port IntOrString
	Host *string
}

func (a TCPSocketAction) Fields() []render.Field {
	return []render.Field{
		render.Attr("port", a.Port),
		render.Attr("host", a.Host),
	}
}
