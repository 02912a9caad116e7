// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"carvel.dev/kchart/pkg/chart"
	cmdui "carvel.dev/kchart/pkg/cmd/ui"
	"carvel.dev/kchart/pkg/files"
	"carvel.dev/kchart/pkg/kube"
	"carvel.dev/kchart/pkg/render"
	"github.com/spf13/cobra"
)

type BuildOptions struct {
	FileFlags       FileFlags
	DescriptorFlags DescriptorFlags
	APIVersionFlags APIVersionFlags

	OutputDir string
	Debug     bool
}

type BuildInput struct {
	Descriptor chart.Descriptor
	Resources  []render.Object
}

func NewBuildOptions() *BuildOptions {
	return &BuildOptions{FileFlags: FileFlags{Recursive: true}}
}

func NewBuildCmd(o *BuildOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Aliases: []string{"b"},
		Short:   "Build chart from resource manifests",
		Example: `
  # Print chart files
  kchart build -f chart.toml -f manifests/

  # Write chart directory
  kchart build -f chart.toml -f manifests/ -o ./guestbook

  # Use older apps API version
  kchart build -f manifests/ --name guestbook --version 0.1.0 --group-version apps=v1beta2`,
		RunE: func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.OutputDir, "output", "o", "", "Directory for chart (removed before writing; if not specified, files are printed)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.FileFlags.Set(cmd)
	o.DescriptorFlags.Set(cmd)
	o.APIVersionFlags.Set(cmd)
	return cmd
}

func (o *BuildOptions) Run() error {
	return o.RunWithUI(cmdui.NewTTY(o.Debug))
}

func (o *BuildOptions) RunWithUI(ui cmdui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	in, err := o.Input(ui)
	if err != nil {
		return err
	}

	defaults, err := o.APIVersionFlags.Defaults()
	if err != nil {
		return err
	}

	ui.Debugf("default API versions: %s\n", defaults)

	builder := chart.NewBuilder(render.NewRenderer(render.RendererOpts{APIVersions: defaults}), ui)

	if len(o.OutputDir) > 0 {
		return builder.Build(in.Descriptor, in.Resources, o.OutputDir)
	}

	outputFiles, err := builder.Files(in.Descriptor, in.Resources)
	if err != nil {
		return err
	}

	for _, file := range outputFiles {
		ui.Printf("---\n# Source: %s\n%s", filepath.ToSlash(file.RelativePath()), file.Bytes())
	}

	return nil
}

// Input reads resources from YAML files and the descriptor from at most one TOML file,
// then applies descriptor flags.
func (o *BuildOptions) Input(ui cmdui.UI) (BuildInput, error) {
	if len(o.FileFlags.Files) == 0 {
		return BuildInput{}, fmt.Errorf("Expected at least one file to be specified via --file (-f)")
	}

	inputFiles, err := files.NewFiles(o.FileFlags.Files, o.FileFlags.Opts())
	if err != nil {
		return BuildInput{}, err
	}

	var in BuildInput
	var descFile *files.File

	for _, file := range inputFiles {
		ui.Debugf("reading: %s (%s)\n", file.Description(), file.Type())

		switch file.Type() {
		case files.TypeYAML:
			data, err := file.Bytes()
			if err != nil {
				return BuildInput{}, fmt.Errorf("Reading %s: %w", file.Description(), err)
			}
			objs, err := kube.ParseManifests(file.RelativePath(), data)
			if err != nil {
				return BuildInput{}, err
			}
			for _, obj := range objs {
				in.Resources = append(in.Resources, obj)
			}

		case files.TypeTOML:
			if descFile != nil {
				return BuildInput{}, fmt.Errorf("Expected at most one chart descriptor file, but found %s and %s",
					descFile.Description(), file.Description())
			}
			descFile = file

			data, err := file.Bytes()
			if err != nil {
				return BuildInput{}, fmt.Errorf("Reading %s: %w", file.Description(), err)
			}
			in.Descriptor, err = chart.LoadDescriptor(file.RelativePath(), data)
			if err != nil {
				return BuildInput{}, err
			}

		default:
			ui.Warnf("Warning: Skipping %s: expected .yaml, .yml or .toml extension\n", file.Description())
		}
	}

	o.DescriptorFlags.Apply(&in.Descriptor)

	err = in.Descriptor.Validate()
	if err != nil {
		return BuildInput{}, fmt.Errorf("%w (use a .toml descriptor file or --name and --version flags)", err)
	}

	return in, nil
}
