// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/coldtrace/drbg90a/cmd/generate"
	"github.com/coldtrace/drbg90a/cmd/reseed"
	"github.com/coldtrace/drbg90a/cmd/selftest"
	"github.com/coldtrace/drbg90a/cmd/version"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "drbgctl",
	Short: "Exercise a NIST SP 800-90A deterministic random bit generator",
	Long: `drbgctl drives the Hash, HMAC, and CTR DRBG mechanisms defined by
NIST SP 800-90A Rev. 1 from the command line: generate pseudo-random
output, reseed a fresh instance with caller-supplied additional input,
and run the known-answer self-test suite.`,
}

func init() {
	RootCmd.AddCommand(generate.NewGenerateCommand())
	RootCmd.AddCommand(reseed.NewReseedCommand())
	RootCmd.AddCommand(selftest.NewSelfTestCommand())
	RootCmd.AddCommand(version.NewVersionCommand())
}
