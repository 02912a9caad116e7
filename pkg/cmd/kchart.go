// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/kchart/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type KchartOptions struct{}

func NewDefaultKchartOptions() *KchartOptions {
	return &KchartOptions{}
}

func NewDefaultKchartCmd() *cobra.Command {
	return NewKchartCmd(NewDefaultKchartOptions())
}

func NewKchartCmd(_ *KchartOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kchart",
		Version: version.Version,
		Short:   "kchart builds Helm style charts from Kubernetes manifests",
		Long: `kchart builds Helm style charts from Kubernetes manifests.

Resources are read from YAML files (-f), the chart descriptor from a TOML file.
The chart directory contains chart.yaml and templates/<Kind>-<n>.yaml.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewBuildCmd(NewBuildOptions()))
	cmd.AddCommand(NewInstallCmd(NewInstallOptions()))
	cmd.AddCommand(NewUninstallCmd(NewUninstallOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
