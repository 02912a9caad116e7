// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"carvel.dev/kchart/pkg/files"
)

// HelmDescriptorFileName is the only descriptor name helm loads charts from.
const HelmDescriptorFileName = "Chart.yaml"

// StageForHelm copies the chart built in srcDir to dstDir (replacing it),
// writing the descriptor as Chart.yaml. Names differ only by case, so on
// case-sensitive file systems helm cannot load srcDir directly.
func StageForHelm(srcDir, dstDir string, ui files.UI) error {
	var outputFiles []files.OutputFile

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !d.Type().IsRegular() {
			return fmt.Errorf("Expected chart file '%s' to be a regular file", path)
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if relPath == DescriptorFileName {
			relPath = HelmDescriptorFileName
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("Reading chart file '%s': %w", path, err)
		}

		outputFiles = append(outputFiles, files.NewOutputFile(relPath, data))
		return nil
	})
	if err != nil {
		return fmt.Errorf("Staging chart '%s': %w", srcDir, err)
	}

	return files.NewOutputDirectory(dstDir, []string{TemplatesDir}, outputFiles, debugUI{ui}).Write()
}

// debugUI demotes progress lines to debug output.
type debugUI struct {
	files.UI
}

func (u debugUI) Printf(str string, args ...interface{}) { u.UI.Debugf(str, args...) }
