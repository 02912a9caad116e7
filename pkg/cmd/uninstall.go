// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"

	cmdui "carvel.dev/kchart/pkg/cmd/ui"
	"carvel.dev/kchart/pkg/helm"
	"github.com/spf13/cobra"
)

type UninstallOptions struct {
	HelmFlags HelmFlags

	Release   string
	Namespace string
	Debug     bool
}

func NewUninstallOptions() *UninstallOptions {
	return &UninstallOptions{}
}

func NewUninstallCmd(o *UninstallOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uninstall",
		Aliases: []string{"delete"},
		Short:   "Uninstall release with helm",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := cmdui.NewTTY(o.Debug)
			return o.Run(cmd.Context(), helm.NewClient(o.HelmFlags.Binary, helm.ExecRunner{}, ui))
		},
	}
	cmd.Flags().StringVarP(&o.Release, "release", "r", "", "Release name")
	cmd.Flags().StringVarP(&o.Namespace, "namespace", "n", "", "Namespace of release")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.HelmFlags.Set(cmd)
	return cmd
}

func (o *UninstallOptions) Run(ctx context.Context, client *helm.Client) error {
	if len(o.Release) == 0 {
		return fmt.Errorf("Expected release name to be specified via --release (-r)")
	}

	return client.Uninstall(ctx, o.Release, o.Namespace)
}
