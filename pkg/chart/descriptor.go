// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"fmt"

	"carvel.dev/kchart/pkg/orderedmap"
	"carvel.dev/kchart/pkg/render"
)

// DefaultAPIVersion is the chart API version used by Helm 3.
const DefaultAPIVersion = "v2"

// Descriptor is rendered as chart.yaml.
type Descriptor struct {
	APIVersion  string
	Name        string
	Version     string
	KubeVersion *string
	Description *string
	Type        *string
	Keywords    []string
	Home        *string
	Sources     []string
	Icon        *string
	AppVersion  *string
	Deprecated  *bool
	Maintainers []Maintainer
	Annotations *orderedmap.Map
}

var _ render.Renderable = Descriptor{}

func (d Descriptor) Fields() []render.Field {
	return []render.Field{
		render.Attr("api_version", d.APIVersion),
		render.Attr("name", d.Name),
		render.Attr("version", d.Version),
		render.Attr("kube_version", d.KubeVersion),
		render.Attr("description", d.Description),
		render.Attr("type", d.Type),
		render.Attr("keywords", d.Keywords),
		render.Attr("home", d.Home),
		render.Attr("sources", d.Sources),
		render.Attr("icon", d.Icon),
		render.Attr("app_version", d.AppVersion),
		render.Attr("deprecated", d.Deprecated),
		render.Attr("maintainers", d.Maintainers),
		render.Attr("annotations", d.Annotations),
	}
}

// Validate checks presence of required fields only.
func (d Descriptor) Validate() error {
	var missing []string
	if len(d.APIVersion) == 0 {
		missing = append(missing, "apiVersion")
	}
	if len(d.Name) == 0 {
		missing = append(missing, "name")
	}
	if len(d.Version) == 0 {
		missing = append(missing, "version")
	}
	if len(missing) > 0 {
		return fmt.Errorf("Expected chart descriptor to specify %v", missing)
	}
	return nil
}

type Maintainer struct {
	Name  string
	Email *string
	URL   *string
}

func (m Maintainer) Fields() []render.Field {
	return []render.Field{
		render.Attr("name", m.Name),
		render.Attr("email", m.Email),
		render.Attr("url", m.URL),
	}
}
