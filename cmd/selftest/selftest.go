// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package selftest

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldtrace/drbg90a"
)

// NewSelfTestCommand creates and returns the selftest command.
func NewSelfTestCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "selftest",
		Short: "Run the DRBG known-answer and boundary self-test suite",
		Long: `Selftest runs drbgctl's self-test suite once per process: the NIST
CAVP known-answer vectors, every supported core's determinism under
fixed entropy, and two boundary conditions (a request of exactly the
maximum chunk size, and instantiation against a failing entropy source).

The suite is memoized: running selftest more than once in the same
process reports the result of the first run.`,
		RunE: runSelfTest,
	}

	return cmd
}

func runSelfTest(cmd *cobra.Command, args []string) error {
	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer func() { _ = writer.Flush() }()

	if err := drbg.RunSelfTests(); err != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "FAIL: %v\n", err)
		return err
	}

	_, err := writer.WriteString("PASS\n")
	return err
}
