// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/kchart/pkg/apiversion"
	"carvel.dev/kchart/pkg/chart"
	"carvel.dev/kchart/pkg/files"
	"github.com/spf13/cobra"
)

type FileFlags struct {
	Files     []string
	Recursive bool

	SymlinkAllowOpts files.SymlinkAllowOpts
}

func (s *FileFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.Files, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&s.Recursive, "recursive", "R", true, "Read files in given directories (true by default)")

	cmd.Flags().BoolVar(&s.SymlinkAllowOpts.AllowAll, "dangerous-allow-all-symlink-destinations", false,
		"Symbolic links are allowed to any destination")
	cmd.Flags().StringSliceVar(&s.SymlinkAllowOpts.AllowedDstPaths, "allow-symlink-destination", nil,
		"File paths to which symbolic links may point to (can be specified multiple times)")
}

func (s *FileFlags) Opts() files.FilesOpts {
	return files.FilesOpts{Recursive: s.Recursive, Symlinks: s.SymlinkAllowOpts}
}

// DescriptorFlags override fields of the chart descriptor file.
type DescriptorFlags struct {
	APIVersion  string
	Name        string
	Version     string
	KubeVersion string
	Description string
	Type        string
	Keywords    []string
	Home        string
	Sources     []string
	AppVersion  string
}

func (s *DescriptorFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.APIVersion, "chart-api-version", "", "Chart API version (default '"+chart.DefaultAPIVersion+"')")
	cmd.Flags().StringVar(&s.Name, "name", "", "Chart name")
	cmd.Flags().StringVar(&s.Version, "version", "", "Chart version")
	cmd.Flags().StringVar(&s.KubeVersion, "kube-version", "", "Supported Kubernetes versions constraint (e.g. '>=1.22.0')")
	cmd.Flags().StringVar(&s.Description, "description", "", "Chart description")
	cmd.Flags().StringVar(&s.Type, "type", "", "Chart type (e.g. 'application', 'library')")
	cmd.Flags().StringSliceVar(&s.Keywords, "keyword", nil, "Chart keyword (can be specified multiple times)")
	cmd.Flags().StringVar(&s.Home, "home", "", "Project home page URL")
	cmd.Flags().StringSliceVar(&s.Sources, "source", nil, "Source code URL (can be specified multiple times)")
	cmd.Flags().StringVar(&s.AppVersion, "app-version", "", "Version of the packaged application")
}

func (s *DescriptorFlags) Apply(desc *chart.Descriptor) {
	setString(&desc.APIVersion, s.APIVersion)
	setString(&desc.Name, s.Name)
	setString(&desc.Version, s.Version)
	setOptionalString(&desc.KubeVersion, s.KubeVersion)
	setOptionalString(&desc.Description, s.Description)
	setOptionalString(&desc.Type, s.Type)
	setOptionalString(&desc.Home, s.Home)
	setOptionalString(&desc.AppVersion, s.AppVersion)

	if len(s.Keywords) > 0 {
		desc.Keywords = s.Keywords
	}
	if len(s.Sources) > 0 {
		desc.Sources = s.Sources
	}
	if len(desc.APIVersion) == 0 {
		desc.APIVersion = chart.DefaultAPIVersion
	}
}

func setString(dst *string, val string) {
	if len(val) > 0 {
		*dst = val
	}
}

func setOptionalString(dst **string, val string) {
	if len(val) > 0 {
		*dst = &val
	}
}

type APIVersionFlags struct {
	DefaultVersion string
	GroupVersions  GroupVersionsFlag
}

func (s *APIVersionFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.DefaultVersion, "default-api-version", "",
		"Default API version for resources without one (default from $"+apiversion.Env+" or '"+apiversion.DefaultVersion+"')")
	cmd.Flags().Var(&s.GroupVersions, "group-version",
		"Default API version for a group, in 'group=version' format, e.g. 'apps=v1beta2' (can be specified multiple times)")
}

// Defaults returns a new configuration based on process-wide defaults
// and the given flags.
func (s *APIVersionFlags) Defaults() (*apiversion.Defaults, error) {
	global := apiversion.Global()

	defaults := apiversion.New(global.Version())
	for group, version := range global.GroupVersions() {
		defaults.SetGroupVersion(group, version)
	}

	if len(s.DefaultVersion) > 0 {
		defaults.SetVersion(s.DefaultVersion)
	}

	err := s.GroupVersions.Apply(defaults)
	if err != nil {
		return nil, err
	}

	return defaults, nil
}
