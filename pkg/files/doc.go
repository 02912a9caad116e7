// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from various
file or file-like Source's and for writing output to filesystem files and
directories.

Input files are classified by Type: TypeYAML files hold resource manifests and
TypeTOML files hold a chart descriptor. Output is a list of OutputFile written
by OutputDirectory, which replaces the whole target directory.
*/
package files
