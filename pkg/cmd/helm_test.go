// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/kchart/pkg/cmd"
	"carvel.dev/kchart/pkg/helm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls []string
	// chart files seen by helm install, relative to the chart directory
	installedFiles map[string]string
}

func (r *recordingRunner) Run(_ context.Context, binary string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, binary+" "+strings.Join(args, " "))

	switch args[0] {
	case "version":
		return []byte("v3.14.2+gc309b6f\n"), nil
	case "install":
		r.installedFiles = map[string]string{}
		chartDir := args[2]
		err := filepath.WalkDir(chartDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			relPath, err := filepath.Rel(chartDir, path)
			if err != nil {
				return err
			}
			r.installedFiles[filepath.ToSlash(relPath)] = string(data)
			return nil
		})
		return nil, err
	}
	return nil, nil
}

type noopUI struct{}

func (noopUI) Printf(string, ...interface{}) {}
func (noopUI) Debugf(string, ...interface{}) {}
func (noopUI) DebugWriter() io.Writer        { return io.Discard }

func TestInstallBuiltChart(t *testing.T) {
	dir := t.TempDir()
	chartDir := filepath.Join(dir, "guestbook")
	writeFile(t, filepath.Join(dir, "res.yml"), "kind: Pod\n")

	buildOpts := cmd.NewBuildOptions()
	buildOpts.FileFlags.Files = []string{filepath.Join(dir, "res.yml")}
	buildOpts.DescriptorFlags.Name = "guestbook"
	buildOpts.DescriptorFlags.Version = "0.1.0"
	buildOpts.OutputDir = chartDir

	_, _, err := runBuild(t, buildOpts)
	require.NoError(t, err)

	runner := &recordingRunner{}
	opts := cmd.NewInstallOptions()
	opts.ChartDir = chartDir
	opts.Release = "gb"
	opts.Namespace = "web"
	opts.CreateNamespace = true

	err = opts.Run(context.Background(), noopUI{}, helm.NewClient("helm", runner, noopUI{}))
	require.NoError(t, err)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "helm version --short", runner.calls[0])

	installArgs := strings.Fields(runner.calls[1])
	require.Len(t, installArgs, 7)
	assert.Equal(t, []string{"helm", "install", "gb"}, installArgs[:3])
	assert.Equal(t, []string{"--namespace", "web", "--create-namespace"}, installArgs[4:])

	descriptor, err := os.ReadFile(filepath.Join(chartDir, "chart.yaml"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Chart.yaml":           string(descriptor),
		"templates/Pod-0.yaml": "apiVersion: v1\nkind: Pod\n",
	}, runner.installedFiles)

	// staged copy is removed, the built chart is untouched
	_, err = os.Stat(installArgs[3])
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(chartDir, "chart.yaml"))
	require.NoError(t, err)

	uninstallOpts := cmd.NewUninstallOptions()
	uninstallOpts.Release = "gb"

	runner = &recordingRunner{}
	err = uninstallOpts.Run(context.Background(), helm.NewClient("helm", runner, noopUI{}))
	require.NoError(t, err)
	assert.Equal(t, "helm uninstall gb", runner.calls[1])
}

func TestInstallRequiresChart(t *testing.T) {
	runner := &recordingRunner{}
	client := helm.NewClient("helm", runner, noopUI{})

	opts := cmd.NewInstallOptions()
	require.EqualError(t, opts.Run(context.Background(), noopUI{}, client), "Expected release name to be specified via --release (-r)")

	opts.Release = "gb"
	require.EqualError(t, opts.Run(context.Background(), noopUI{}, client), "Expected chart directory to be specified via --chart-dir (-d)")

	opts.ChartDir = t.TempDir()
	err := opts.Run(context.Background(), noopUI{}, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to contain chart.yaml")

	assert.Empty(t, runner.calls)

	require.EqualError(t, cmd.NewUninstallOptions().Run(context.Background(), client),
		"Expected release name to be specified via --release (-r)")
}
