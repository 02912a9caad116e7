// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	outputDirPerm  = 0755
	outputFilePerm = 0644
)

type OutputFile struct {
	relativePath string
	data         []byte
}

func NewOutputFile(relativePath string, data []byte) OutputFile {
	return OutputFile{relativePath, data}
}

func (f OutputFile) RelativePath() string { return f.relativePath }
func (f OutputFile) Bytes() []byte        { return f.data }

func (f OutputFile) Path(dirPath string) string {
	return filepath.Join(dirPath, f.relativePath)
}

func (f OutputFile) Create(dirPath string) error {
	resultPath := f.Path(dirPath)

	err := os.MkdirAll(filepath.Dir(resultPath), outputDirPerm)
	if err != nil {
		return fmt.Errorf("Creating directory '%s': %w", filepath.Dir(resultPath), err)
	}

	fd, err := os.OpenFile(resultPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFilePerm)
	if err != nil {
		return fmt.Errorf("Writing file '%s': %w", resultPath, err)
	}

	defer fd.Close()

	_, err = fd.Write(f.data)
	if err != nil {
		return fmt.Errorf("Writing file '%s': %w", resultPath, err)
	}
	return nil
}
