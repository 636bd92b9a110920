// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package reseed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReseedCommand_Default(t *testing.T) {
	is := assert.New(t)

	cmd := NewReseedCommand()
	cmd.SetArgs([]string{"--bytes", "16"})

	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)

	err := cmd.Execute()
	is.NoError(err, "expected no error on reseed command with default options")

	output := strings.TrimSpace(outBuf.String())
	lines := strings.Split(output, "\n")
	is.Len(lines, 2, "expected a before line and an after line")
	is.True(strings.HasPrefix(lines[0], "before: "))
	is.True(strings.HasPrefix(lines[1], "after:  "))
	is.NotEqual(lines[0], lines[1], "reseeding must change subsequent output")
}

func TestReseedCommand_WithAddtl(t *testing.T) {
	is := assert.New(t)

	cmd := NewReseedCommand()
	cmd.SetArgs([]string{"--addtl", "caller-supplied material", "--bytes", "16"})

	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)

	err := cmd.Execute()
	is.NoError(err, "expected no error on reseed command with additional input")
}

func TestReseedCommand_UnknownCore(t *testing.T) {
	is := assert.New(t)

	cmd := NewReseedCommand()
	cmd.SetArgs([]string{"--core", "does-not-exist"})

	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)

	err := cmd.Execute()
	is.Error(err, "expected an error on unknown core")
	is.Contains(errBuf.String(), "unknown --core")
}

func TestReseedCommand_RejectsNonPositiveByteCount(t *testing.T) {
	is := assert.New(t)

	cmd := NewReseedCommand()
	cmd.SetArgs([]string{"--bytes", "0"})

	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)

	err := cmd.Execute()
	is.Error(err, "expected an error on non-positive byte count")
	is.Contains(errBuf.String(), "--bytes must be a positive integer")
}
