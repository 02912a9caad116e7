// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	suspiciousOutputDirectoryPaths = []string{"/", ".", "./", ""}
)

// OutputDirectory replaces the contents of path with a set of files.
type OutputDirectory struct {
	path  string
	dirs  []string
	files []OutputFile
	ui    UI
}

// NewOutputDirectory creates a sink for files. Each of dirs (relative to path)
// is created even when no file is written into it.
func NewOutputDirectory(path string, dirs []string, files []OutputFile, ui UI) *OutputDirectory {
	return &OutputDirectory{path, dirs, files, ui}
}

func (d *OutputDirectory) Files() []OutputFile { return d.files }

// Write removes path entirely and then writes all files.
// Files written before a failure are left in place.
func (d *OutputDirectory) Write() error {
	filePaths := map[string]struct{}{}

	for _, file := range d.files {
		path := filepath.Clean(file.RelativePath())
		if _, found := filePaths[path]; found {
			return fmt.Errorf("Multiple files have same output destination paths: %s", path)
		}
		if filepath.IsAbs(path) || path == ".." || strings.HasPrefix(path, ".."+string(filepath.Separator)) {
			return fmt.Errorf("Expected output file path '%s' to be within output directory", path)
		}
		filePaths[path] = struct{}{}
	}

	for _, path := range suspiciousOutputDirectoryPaths {
		if d.path == path {
			return fmt.Errorf("Expected output directory path to not be one of '%s'",
				strings.Join(suspiciousOutputDirectoryPaths, "', '"))
		}
	}

	d.ui.Debugf("removing: %s\n", d.path)

	err := os.RemoveAll(d.path)
	if err != nil {
		return fmt.Errorf("Removing output directory '%s': %w", d.path, err)
	}

	return d.WriteFiles()
}

// WriteFiles writes files without removing existing contents first.
func (d *OutputDirectory) WriteFiles() error {
	err := os.MkdirAll(d.path, outputDirPerm)
	if err != nil {
		return fmt.Errorf("Creating output directory '%s': %w", d.path, err)
	}

	for _, dir := range d.dirs {
		err := os.MkdirAll(filepath.Join(d.path, dir), outputDirPerm)
		if err != nil {
			return fmt.Errorf("Creating directory '%s': %w", dir, err)
		}
	}

	for _, file := range d.files {
		d.ui.Printf("creating: %s\n", file.Path(d.path))

		err := file.Create(d.path)
		if err != nil {
			return err
		}
	}

	return nil
}
