// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package generate

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCommand_Default(t *testing.T) {
	is := assert.New(t)

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--count", "2"})

	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)

	err := cmd.Execute()
	is.NoError(err, "expected no error on generate command with default options")

	output := strings.TrimSpace(outBuf.String())
	lines := strings.Split(output, "\n")
	is.Len(lines, 2, "expected two lines of output")
	for _, line := range lines {
		decoded, decodeErr := hex.DecodeString(line)
		is.NoError(decodeErr, "expected hex-encoded output")
		is.Len(decoded, 32, "expected default request size of 32 bytes")
	}
}

func TestGenerateCommand_CustomByteCount(t *testing.T) {
	is := assert.New(t)

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--bytes", "48", "--count", "1"})

	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)

	err := cmd.Execute()
	is.NoError(err, "expected no error on generate command with custom byte count")

	output := strings.TrimSpace(outBuf.String())
	decoded, decodeErr := hex.DecodeString(output)
	is.NoError(decodeErr)
	is.Len(decoded, 48, "expected 48 bytes of output")
}

func TestGenerateCommand_SelectsCTRCore(t *testing.T) {
	is := assert.New(t)

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--core", "ctr-aes256", "--count", "3"})

	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)

	err := cmd.Execute()
	is.NoError(err, "expected no error on generate command with ctr-aes256 core")

	output := strings.TrimSpace(outBuf.String())
	lines := strings.Split(output, "\n")
	is.Len(lines, 3, "expected three lines of output")
}

func TestGenerateCommand_UnknownCore(t *testing.T) {
	is := assert.New(t)

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--core", "does-not-exist"})

	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)

	err := cmd.Execute()
	is.Error(err, "expected an error on unknown core")
	is.Contains(errBuf.String(), "unknown --core")
}

func TestGenerateCommand_Verbose(t *testing.T) {
	is := assert.New(t)

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--count", "10", "--verbose"})

	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&outBuf)

	err := cmd.Execute()
	is.NoError(err, "expected no error on generate command with verbose output")

	output := strings.TrimSpace(outBuf.String())
	lines := strings.Split(output, "\n")
	is.Equal(20, len(lines), "expected output to contain 20 lines (10 requests + a blank line + 9 verbose stat lines)")
}

func TestGenerateCommand_ErrorOutput(t *testing.T) {
	is := assert.New(t)

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--bytes", "-1"})

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)

	err := cmd.Execute()
	is.Error(err, "expected an error on invalid argument")

	stderrOutput := strings.TrimSpace(errBuf.String())
	is.Contains(stderrOutput, "--bytes must be a positive integer", "expected specific error message in stderr")

	stdoutOutput := strings.TrimSpace(outBuf.String())
	is.NotEmpty(stdoutOutput, "expected output showing usage")
}

func TestGenerateCommand_WriteError(t *testing.T) {
	is := assert.New(t)
	var stdoutBuf, rawStderrBuf bytes.Buffer
	stderr := bufio.NewWriter(&rawStderrBuf)

	cmd := &cobra.Command{}
	cmd.SetOut(bufio.NewWriter(&stdoutBuf))
	cmd.SetErr(stderr)

	errMsg := "test error"
	origErr := errors.New("underlying failure")

	returnedErr := writeError(cmd, errMsg, origErr)

	_ = stderr.Flush()

	expectedOutput := fmt.Sprintf("%s: %v", errMsg, origErr)
	is.Contains(rawStderrBuf.String(), expectedOutput, "stderr should contain the error message")
	is.ErrorContains(returnedErr, errMsg)
	is.ErrorIs(returnedErr, origErr)
}

func TestGenerateCommand_WriteString(t *testing.T) {
	is := assert.New(t)
	var stdoutBuf, rawStderrBuf bytes.Buffer
	stderr := bufio.NewWriter(&rawStderrBuf)

	cmd := &cobra.Command{}
	cmd.SetOut(bufio.NewWriter(&stdoutBuf))
	cmd.SetErr(stderr)

	errMsg := "test error"

	returnedErr := writeString(cmd, errMsg)

	_ = stderr.Flush()

	is.Contains(rawStderrBuf.String(), errMsg, "stderr should contain the error message")
	is.ErrorContains(returnedErr, errMsg)
}
