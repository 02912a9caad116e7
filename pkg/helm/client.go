// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package helm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"carvel.dev/kchart/pkg/files"
	semver "github.com/hashicorp/go-version"
)

const DefaultBinary = "helm"

var (
	versionRegexp = regexp.MustCompile(`v?(\d+\.\d+\.\d+[0-9A-Za-z.+-]*)`)

	helm3Constraint           = semver.MustConstraints(semver.NewConstraint(">= 3.0.0"))
	createNamespaceConstraint = semver.MustConstraints(semver.NewConstraint(">= 3.2.0"))
)

type Client struct {
	binary string
	runner CommandRunner
	ui     files.UI
}

func NewClient(binary string, runner CommandRunner, ui files.UI) *Client {
	if len(binary) == 0 {
		binary = DefaultBinary
	}
	return &Client{binary, runner, ui}
}

// Version returns the client version reported by `helm version --short`,
// e.g. "v3.14.2+gc309b6f" or "Client: v2.17.0+ga690bad".
func (c *Client) Version(ctx context.Context) (*semver.Version, error) {
	out, err := c.run(ctx, "version", "--short")
	if err != nil {
		return nil, err
	}

	matches := versionRegexp.FindStringSubmatch(string(out))
	if len(matches) < 2 {
		return nil, fmt.Errorf("Expected to find version in helm output '%s'", strings.TrimSpace(string(out)))
	}

	ver, err := semver.NewVersion(matches[1])
	if err != nil {
		return nil, fmt.Errorf("Parsing helm version '%s': %w", matches[1], err)
	}

	return ver, nil
}

type InstallOpts struct {
	Namespace       string
	CreateNamespace bool
}

func (c *Client) Install(ctx context.Context, release, chartDir string, opts InstallOpts) error {
	ver, err := c.Version(ctx)
	if err != nil {
		return err
	}

	var args []string

	// constraints never match prereleases (3.15.0-rc.1), so check the core version
	coreVer := ver.Core()

	if helm3Constraint.Check(coreVer) {
		args = []string{"install", release, chartDir}
	} else {
		args = []string{"install", chartDir, "--name", release}
	}

	if len(opts.Namespace) > 0 {
		args = append(args, "--namespace", opts.Namespace)
	}

	if opts.CreateNamespace {
		if !createNamespaceConstraint.Check(coreVer) {
			return fmt.Errorf("Expected helm version to satisfy '%s' to create namespace, but was '%s'",
				createNamespaceConstraint, ver)
		}
		args = append(args, "--create-namespace")
	}

	_, err = c.run(ctx, args...)
	return err
}

func (c *Client) Uninstall(ctx context.Context, release, namespace string) error {
	ver, err := c.Version(ctx)
	if err != nil {
		return err
	}

	var args []string

	if helm3Constraint.Check(ver.Core()) {
		args = []string{"uninstall", release}
		if len(namespace) > 0 {
			args = append(args, "--namespace", namespace)
		}
	} else {
		// helm 2 releases are not namespaced
		args = []string{"delete", "--purge", release}
	}

	_, err = c.run(ctx, args...)
	return err
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	t1 := time.Now()

	defer func() {
		c.ui.Debugf("helm %s: %s\n", strings.Join(args, " "), time.Since(t1))
	}()

	out, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return nil, err
	}

	c.ui.Debugf("%s", out)

	return out, nil
}
