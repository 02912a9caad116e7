// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"fmt"
	"testing"

	"carvel.dev/kchart/pkg/cmd/ui"
	"github.com/stretchr/testify/assert"
)

func TestTTYStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer

	tty := ui.NewCustomWriterTTY(false, &stdout, &stderr)
	tty.Printf("creating: %s\n", "chart.yaml")
	tty.Warnf("Warning: %s\n", "skipped")
	tty.Debugf("hidden\n")
	fmt.Fprintf(tty.DebugWriter(), "hidden too\n")

	assert.Equal(t, "creating: chart.yaml\n", stdout.String())
	assert.Equal(t, "Warning: skipped\n", stderr.String())

	stdout.Reset()
	stderr.Reset()

	tty = ui.NewCustomWriterTTY(true, &stdout, &stderr)
	tty.Debugf("total: %s\n", "1s")
	fmt.Fprintf(tty.DebugWriter(), "more\n")

	assert.Equal(t, "", stdout.String())
	assert.Equal(t, "total: 1s\nmore\n", stderr.String())
}
