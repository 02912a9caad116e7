// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"fmt"
	"strings"

	"carvel.dev/kchart/pkg/orderedmap"
	"github.com/BurntSushi/toml"
)

type tomlDescriptor struct {
	APIVersion  string            `toml:"apiVersion"`
	Name        string            `toml:"name"`
	Version     string            `toml:"version"`
	KubeVersion *string           `toml:"kubeVersion"`
	Description *string           `toml:"description"`
	Type        *string           `toml:"type"`
	Keywords    []string          `toml:"keywords"`
	Home        *string           `toml:"home"`
	Sources     []string          `toml:"sources"`
	Icon        *string           `toml:"icon"`
	AppVersion  *string           `toml:"appVersion"`
	Deprecated  *bool             `toml:"deprecated"`
	Maintainers []tomlMaintainer  `toml:"maintainers"`
	Annotations map[string]string `toml:"annotations"`
}

type tomlMaintainer struct {
	Name  string  `toml:"name"`
	Email *string `toml:"email"`
	URL   *string `toml:"url"`
}

// LoadDescriptor decodes a TOML chart descriptor, for example:
//
//	apiVersion = "v2"
//	name = "guestbook"
//	version = "0.1.0"
//
//	[annotations]
//	category = "demo"
//
// Annotations keep their order from the document. Unknown keys are an error.
func LoadDescriptor(name string, data []byte) (Descriptor, error) {
	var td tomlDescriptor

	md, err := toml.Decode(string(data), &td)
	if err != nil {
		return Descriptor{}, fmt.Errorf("Unmarshaling chart descriptor '%s': %w", name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Descriptor{}, fmt.Errorf("Expected chart descriptor '%s' to only contain known keys, but found '%s'",
			name, strings.Join(keys, "', '"))
	}

	desc := Descriptor{
		APIVersion:  td.APIVersion,
		Name:        td.Name,
		Version:     td.Version,
		KubeVersion: td.KubeVersion,
		Description: td.Description,
		Type:        td.Type,
		Keywords:    td.Keywords,
		Home:        td.Home,
		Sources:     td.Sources,
		Icon:        td.Icon,
		AppVersion:  td.AppVersion,
		Deprecated:  td.Deprecated,
	}

	for _, m := range td.Maintainers {
		desc.Maintainers = append(desc.Maintainers, Maintainer{Name: m.Name, Email: m.Email, URL: m.URL})
	}

	if td.Annotations != nil {
		desc.Annotations = orderedmap.NewMap()
		for _, key := range md.Keys() {
			if len(key) == 2 && key[0] == "annotations" {
				desc.Annotations.Set(key[1], td.Annotations[key[1]])
			}
		}
	}

	return desc, nil
}
