// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over user output (typically,
a tty device). Rendered charts and progress go to stdout;
warnings and --debug output go to stderr.
*/
package ui
