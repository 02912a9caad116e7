// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/kchart/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUI struct {
	out bytes.Buffer
}

var _ files.UI = &recordingUI{}

func (u *recordingUI) Printf(str string, args ...interface{}) { fmt.Fprintf(&u.out, str, args...) }
func (u *recordingUI) Debugf(string, ...interface{})          {}
func (u *recordingUI) DebugWriter() io.Writer                 { return io.Discard }

func TestOutputDirectoryReplacesContents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chart")
	writeFile(t, filepath.Join(dir, "templates", "stale.yaml"), "stale")
	writeFile(t, filepath.Join(dir, "other.txt"), "stale")

	ui := &recordingUI{}
	outFiles := []files.OutputFile{
		files.NewOutputFile("chart.yaml", []byte("name: app\n")),
		files.NewOutputFile(filepath.Join("templates", "Pod-0.yaml"), []byte("kind: Pod\n")),
	}

	err := files.NewOutputDirectory(dir, []string{"templates"}, outFiles, ui).Write()
	require.NoError(t, err)

	assert.Equal(t, []string{"chart.yaml", "templates"}, listDir(t, dir))
	assert.Equal(t, []string{"Pod-0.yaml"}, listDir(t, filepath.Join(dir, "templates")))

	bs, err := os.ReadFile(filepath.Join(dir, "templates", "Pod-0.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "kind: Pod\n", string(bs))

	expectedOut := fmt.Sprintf("creating: %s\ncreating: %s\n",
		filepath.Join(dir, "chart.yaml"), filepath.Join(dir, "templates", "Pod-0.yaml"))
	assert.Equal(t, expectedOut, ui.out.String())
}

func TestOutputDirectoryCreatesEmptyDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chart")

	err := files.NewOutputDirectory(dir, []string{"templates"}, nil, &recordingUI{}).Write()
	require.NoError(t, err)

	assert.Equal(t, []string{"templates"}, listDir(t, dir))
	assert.Empty(t, listDir(t, filepath.Join(dir, "templates")))
}

func TestOutputDirectoryRejectsUnsafePaths(t *testing.T) {
	for _, path := range []string{"", ".", "./", "/"} {
		err := files.NewOutputDirectory(path, nil, nil, &recordingUI{}).Write()
		require.EqualError(t, err, "Expected output directory path to not be one of '/', '.', './', ''")
	}

	dir := t.TempDir()

	err := files.NewOutputDirectory(dir, nil, []files.OutputFile{
		files.NewOutputFile("a.yaml", nil),
		files.NewOutputFile("./a.yaml", nil),
	}, &recordingUI{}).Write()
	require.EqualError(t, err, "Multiple files have same output destination paths: a.yaml")

	err = files.NewOutputDirectory(dir, nil, []files.OutputFile{
		files.NewOutputFile("../escape.yaml", nil),
	}, &recordingUI{}).Write()
	require.EqualError(t, err, "Expected output file path '../escape.yaml' to be within output directory")
}

func listDir(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
