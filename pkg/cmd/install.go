// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"carvel.dev/kchart/pkg/chart"
	cmdui "carvel.dev/kchart/pkg/cmd/ui"
	"carvel.dev/kchart/pkg/files"
	"carvel.dev/kchart/pkg/helm"
	"github.com/spf13/cobra"
)

type HelmFlags struct {
	Binary string
}

func (s *HelmFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.Binary, "helm-binary", helm.DefaultBinary, "Path to helm binary")
}

type InstallOptions struct {
	HelmFlags HelmFlags

	ChartDir        string
	Release         string
	Namespace       string
	CreateNamespace bool
	Debug           bool
}

func NewInstallOptions() *InstallOptions {
	return &InstallOptions{}
}

func NewInstallCmd(o *InstallOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install built chart with helm",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := cmdui.NewTTY(o.Debug)
			return o.Run(cmd.Context(), ui, helm.NewClient(o.HelmFlags.Binary, helm.ExecRunner{}, ui))
		},
	}
	cmd.Flags().StringVarP(&o.ChartDir, "chart-dir", "d", "", "Chart directory produced by 'kchart build -o'")
	cmd.Flags().StringVarP(&o.Release, "release", "r", "", "Release name")
	cmd.Flags().StringVarP(&o.Namespace, "namespace", "n", "", "Namespace for release")
	cmd.Flags().BoolVar(&o.CreateNamespace, "create-namespace", false, "Create namespace if it does not exist (requires helm >= 3.2.0)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.HelmFlags.Set(cmd)
	return cmd
}

// Run installs a staged copy of the chart directory, since helm only
// loads descriptors named Chart.yaml.
func (o *InstallOptions) Run(ctx context.Context, ui files.UI, client *helm.Client) error {
	if len(o.Release) == 0 {
		return fmt.Errorf("Expected release name to be specified via --release (-r)")
	}

	err := checkChartDir(o.ChartDir)
	if err != nil {
		return err
	}

	stagingDir, err := os.MkdirTemp("", "kchart-install-")
	if err != nil {
		return fmt.Errorf("Creating staging directory: %w", err)
	}

	defer os.RemoveAll(stagingDir)

	stagedChartDir := filepath.Join(stagingDir, "chart")

	err = chart.StageForHelm(o.ChartDir, stagedChartDir, ui)
	if err != nil {
		return err
	}

	return client.Install(ctx, o.Release, stagedChartDir, helm.InstallOpts{
		Namespace:       o.Namespace,
		CreateNamespace: o.CreateNamespace,
	})
}

func checkChartDir(dir string) error {
	if len(dir) == 0 {
		return fmt.Errorf("Expected chart directory to be specified via --chart-dir (-d)")
	}

	_, err := os.Stat(filepath.Join(dir, chart.DescriptorFileName))
	if err != nil {
		return fmt.Errorf("Expected chart directory '%s' to contain %s: %w", dir, chart.DescriptorFileName, err)
	}
	return nil
}
