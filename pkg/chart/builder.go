// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"fmt"
	"path/filepath"

	"carvel.dev/kchart/pkg/files"
	"carvel.dev/kchart/pkg/render"
)

const (
	DescriptorFileName = "chart.yaml"
	TemplatesDir       = "templates"
)

type Builder struct {
	renderer render.Renderer
	ui       files.UI
}

func NewBuilder(renderer render.Renderer, ui files.UI) Builder {
	return Builder{renderer, ui}
}

// Files renders the descriptor and each resource without touching the file system.
// The descriptor comes first, followed by resources in input order.
func (b Builder) Files(desc Descriptor, resources []render.Object) ([]files.OutputFile, error) {
	descBytes, err := b.renderer.AsBytes(desc)
	if err != nil {
		return nil, fmt.Errorf("Rendering chart descriptor: %w", err)
	}

	result := []files.OutputFile{files.NewOutputFile(DescriptorFileName, descBytes)}
	kindCounts := map[string]int{}

	for i, res := range resources {
		kind := res.ObjectKind().Kind
		if len(kind) == 0 {
			return nil, fmt.Errorf("Expected resource %d to have a kind", i)
		}
		if !render.ValidKind(kind) {
			return nil, fmt.Errorf("Expected resource %d to have kind made of letters and digits, but was '%s'", i, kind)
		}

		resBytes, err := b.renderer.AsBytes(res)
		if err != nil {
			return nil, fmt.Errorf("Rendering resource %d (kind '%s'): %w", i, kind, err)
		}

		fileName := fmt.Sprintf("%s-%d.yaml", kind, kindCounts[kind])
		kindCounts[kind]++

		result = append(result, files.NewOutputFile(filepath.Join(TemplatesDir, fileName), resBytes))
	}

	return result, nil
}

// Build replaces targetDir with a freshly rendered chart. Rendering
// happens before targetDir is removed, so render errors leave it untouched.
func (b Builder) Build(desc Descriptor, resources []render.Object, targetDir string) error {
	outputFiles, err := b.Files(desc, resources)
	if err != nil {
		return err
	}

	b.ui.Debugf("building chart '%s' with %d resource(s) into %s\n", desc.Name, len(resources), targetDir)

	return files.NewOutputDirectory(targetDir, []string{TemplatesDir}, outputFiles, b.ui).Write()
}
