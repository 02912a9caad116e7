// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for rendering manifests and asserting
the expected output.
*/
package filetests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/kchart/pkg/apiversion"
	"carvel.dev/kchart/pkg/kube"
	"carvel.dev/kchart/pkg/render"
	"carvel.dev/kchart/pkg/version"
	"github.com/k14s/difflib"
)

const (
	directivePrefix            = "#! "
	defaultAPIVersionDirective = "default-api-version:"
	groupVersionDirective      = "group-version:"
)

// EvaluateManifests is the processing desired from source manifests to the final result.
type EvaluateManifests func(src string) ([]byte, *TestErr)

// FileTests contain a suite of test cases, each described in a separate file, verifying how manifests render.
//
// Test cases:
// - are found within the directory at "PathToTests"
// - conventionally have a .chtest extension
// - top-half is the manifests; bottom-half is the expected output; divided by `+++` and a blank line.
//
// Leading lines of the top-half may configure API version defaults:
//
//	#! default-api-version: v2
//	#! group-version: apps=v1beta2
//
// Expected output starting with `ERR:` indicates that expected output is an error message.
// Otherwise expected output is the rendered document stream.
//
// For example:
//
//	#! my-test.chtest
//	kind: Service
//	metadata:
//	  name: redis
//	+++
//
//	---
//	apiVersion: v1
//	kind: Service
//	metadata:
//	  name: redis
type FileTests struct {
	PathToTests string
	EvalFunc    EvaluateManifests
}

// Run runs each test: enumerates each file within FileTests.PathToTests; splits and evaluates using FileTests.EvalFunc.
func (f FileTests) Run(t *testing.T) {
	var files []string
	version.Version = "0.0.0"

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}

	if f.EvalFunc == nil {
		f.EvalFunc = DefaultEvalManifests
	}

	for _, filePath := range files {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)

			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}
			expectedStr := pieces[1]

			result, testErr := f.EvalFunc(pieces[0])

			if strings.HasPrefix(expectedStr, "ERR:") {
				if testErr == nil {
					err = fmt.Errorf("expected eval error, but did not receive it")
				} else {
					resultStr := TrimTrailingMultilineWhitespace(testErr.UserErr().Error())

					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					expectedStr = TrimTrailingMultilineWhitespace(expectedStr)
					err = expectEquals(resultStr, expectedStr)
				}
			} else {
				if testErr == nil {
					err = expectEquals(string(result), expectedStr)
				} else {
					err = testErr.TestErr()
				}
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

// TestErr captures an error result from a single test.
type TestErr struct {
	realErr error
	testErr error
}

// NewTestErr creates a new TestErr
func NewTestErr(realErr, testErr error) *TestErr {
	return &TestErr{realErr, testErr}
}

// UserErr yields the error returned to the user
func (e TestErr) UserErr() error { return e.realErr }

// TestErr yields the error wrapped with helpful test context
func (e TestErr) TestErr() error { return e.testErr }

func expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		return fmt.Errorf("not equal; diff expected...result:\n%s", diff)
	}
	return nil
}

// DefaultEvalManifests parses manifests in "src" and renders them as a document stream
// using API version defaults configured by leading directives.
func DefaultEvalManifests(src string) ([]byte, *TestErr) {
	defaults, err := ParseDirectives(src)
	if err != nil {
		return nil, NewTestErr(err, fmt.Errorf("directive error: %v", err))
	}

	objs, err := kube.ParseManifests("stdin", []byte(src))
	if err != nil {
		return nil, NewTestErr(err, fmt.Errorf("unmarshal error: %v", err))
	}

	var vals []interface{}
	for _, obj := range objs {
		vals = append(vals, obj)
	}

	result, err := render.NewRenderer(render.RendererOpts{APIVersions: defaults}).AsDocuments(vals)
	if err != nil {
		return nil, NewTestErr(err, fmt.Errorf("render error: %v", err))
	}
	return result, nil
}

// ParseDirectives reads "#! key: value" lines at the top of src into API version defaults.
func ParseDirectives(src string) (*apiversion.Defaults, error) {
	defaults := apiversion.New("")

	for _, line := range strings.Split(src, "\n") {
		if !strings.HasPrefix(line, directivePrefix) {
			break
		}
		directive := strings.TrimPrefix(line, directivePrefix)

		switch {
		case strings.HasPrefix(directive, defaultAPIVersionDirective):
			defaults.SetVersion(strings.TrimSpace(strings.TrimPrefix(directive, defaultAPIVersionDirective)))
		case strings.HasPrefix(directive, groupVersionDirective):
			group, ver, err := apiversion.ParseGroupVersion(strings.TrimPrefix(directive, groupVersionDirective))
			if err != nil {
				return nil, err
			}
			defaults.SetGroupVersion(group, ver)
		default:
			return nil, fmt.Errorf("Unknown directive '%s'", line)
		}
	}

	return defaults, nil
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
