// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guestbookDir = "../../examples/guestbook/"

func TestBuildPrintsChart(t *testing.T) {
	actualOutput, stderr := runKchart(t, testInputFiles{guestbookDir}, "", nil, nil)

	expectedOutput, err := os.ReadFile("assets/guestbook-build.yml")
	require.NoError(t, err)
	require.Equal(t, string(expectedOutput), actualOutput)

	assert.Contains(t, stderr, "Warning: Skipping file '"+filepath.Join(guestbookDir, "README.md")+"'")
}

func TestBuildOutputDirectory(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "guestbook")

	// stale files are removed
	require.NoError(t, os.MkdirAll(filepath.Join(outputDir, "templates"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, "templates", "Stale-0.yaml"), []byte("kind: Stale\n"), 0644))

	flags := kchartFlags{{"-o": outputDir}}
	stdout, _ := runKchart(t, testInputFiles{guestbookDir}, "", flags, nil)

	assert.Contains(t, stdout, "creating: "+filepath.Join(outputDir, "chart.yaml"))

	entries, err := os.ReadDir(filepath.Join(outputDir, "templates"))
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	require.Equal(t, []string{"Deployment-0.yaml", "Deployment-1.yaml", "Service-0.yaml", "Service-1.yaml"}, names)

	actualOutput, err := os.ReadFile(filepath.Join(outputDir, "templates", "Service-1.yaml"))
	require.NoError(t, err)

	expectedOutput := `apiVersion: v1
kind: Service
metadata:
  name: redis-leader
spec:
  selector:
    app: redis
  ports:
  - port: 6379
    targetPort: 6379
`
	require.Equal(t, expectedOutput, string(actualOutput))
}

func TestBuildFromStdin(t *testing.T) {
	stdin := filepath.Join(t.TempDir(), "stdin.yml")
	require.NoError(t, os.WriteFile(stdin, []byte("kind: Namespace\nmetadata:\n  name: web\n"), 0644))

	flags := kchartFlags{{"--name": "web"}, {"--version": "1.0.0"}}
	actualOutput, _ := runKchart(t, testInputFiles{"-"}, stdin, flags, nil)

	expectedOutput := `---
# Source: chart.yaml
apiVersion: v2
name: web
version: 1.0.0
---
# Source: templates/Namespace-0.yaml
apiVersion: v1
kind: Namespace
metadata:
  name: web
`
	require.Equal(t, expectedOutput, actualOutput)
}

func TestDefaultAPIVersions(t *testing.T) {
	t.Run("from env", func(t *testing.T) {
		envs := []string{"KCHART_DEFAULT_API_VERSION=v2"}
		actualOutput, _ := runKchart(t, testInputFiles{guestbookDir}, "", nil, envs)

		assert.Contains(t, actualOutput, "# Source: templates/Service-0.yaml\napiVersion: v2\n")
		assert.Contains(t, actualOutput, "# Source: templates/Deployment-1.yaml\napiVersion: apps/v2\n")
		// explicit apiVersion is kept
		assert.Contains(t, actualOutput, "# Source: templates/Deployment-0.yaml\napiVersion: apps/v1\n")
	})

	t.Run("from flags", func(t *testing.T) {
		envs := []string{"KCHART_DEFAULT_API_VERSION=v2"}
		flags := kchartFlags{{"--default-api-version": "v3"}, {"--group-version": "apps=v1beta2"}}
		actualOutput, _ := runKchart(t, testInputFiles{guestbookDir}, "", flags, envs)

		assert.Contains(t, actualOutput, "# Source: templates/Service-0.yaml\napiVersion: v3\n")
		assert.Contains(t, actualOutput, "# Source: templates/Deployment-1.yaml\napiVersion: apps/v1beta2\n")
	})
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "res.yml"), []byte("kind: Pod\n"), 0644))

	stderr := runKchartWithErr(t, []string{"build", "-f", dir})
	assert.Contains(t, stderr, "kchart: Error: ")
	assert.Contains(t, stderr, "Expected chart descriptor to specify")

	stderr = runKchartWithErr(t, []string{"build", "-f", dir, "--name", "x", "--version", "1", "--group-version", "apps"})
	assert.Contains(t, stderr, "Expected group version 'apps' to be in format 'group=version'")
}

func TestVersion(t *testing.T) {
	command := exec.Command("../../kchart", "version")
	command.Env = []string{}
	output, err := command.Output()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "kchart version "), lines[0])
	assert.Equal(t, "default API version: v1", lines[1])
}

type testInputFiles []string

type kchartFlags []map[string]string

func runKchart(t *testing.T, files testInputFiles, stdinFileName string, flags kchartFlags, envs []string) (string, string) {
	args := []string{"build"}
	for _, file := range files {
		args = append(args, "-f", file)
	}

	for _, flagElement := range flags {
		for flagName, flagVal := range flagElement {
			if flagVal != "" {
				args = append(args, flagName, flagVal)
			} else {
				args = append(args, flagName)
			}
		}
	}

	command := exec.Command("../../kchart", args...)
	stdError := bytes.NewBufferString("")
	command.Stderr = stdError
	command.Env = append(command.Env, envs...)

	if stdinFileName != "" {
		fileToUseInStdIn, err := os.Open(stdinFileName)
		require.NoError(t, err)
		defer fileToUseInStdIn.Close()
		command.Stdin = fileToUseInStdIn
	}
	output, err := command.Output()
	require.NoError(t, err, stdError.String())

	return string(output), stdError.String()
}

func runKchartWithErr(t *testing.T, args []string) string {
	command := exec.Command("../../kchart", args...)
	stdError := bytes.NewBufferString("")
	command.Stderr = stdError

	err := command.Run()
	require.Error(t, err)

	return stdError.String()
}
