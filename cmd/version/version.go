// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package version

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/spf13/cobra"

	"github.com/coldtrace/drbg90a"
)

// NewVersionCommand creates and returns the version command
func NewVersionCommand() *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Display the version of drbgctl and the default DRBG core",
		Long:  `Display the current version of drbgctl, the git commit it was built from, and the DRBG core generate/reseed/selftest use when --core is not given.`,
		Run: func(cmd *cobra.Command, args []string) {
			// Use a buffered writer for efficient writing
			writer := bufio.NewWriter(cmd.OutOrStdout())
			_, err := writer.WriteString(fmt.Sprintf("version: %s\n", Version()))
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error writing version: %v\n", err)
				return
			}

			_, err = writer.WriteString(fmt.Sprintf("commit: %s\n", GitCommitID()))
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error writing commit: %v\n", err)
				return
			}

			_, err = writer.WriteString(fmt.Sprintf("default core: %s\n", DefaultCoreName()))
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error writing default core: %v\n", err)
				return
			}

			defer func(writer *bufio.Writer) {
				err := writer.Flush()
				if err != nil {
					_, _ = fmt.Fprintf(os.Stderr, "Error flushing writer: %v\n", err)
				}
			}(writer)
		},
	}

	return versionCmd
}

// DefaultCoreName reports the name of the Core drbg.DefaultConfig
// selects, so `drbgctl version` tells an operator which mechanism and
// primitive generate/reseed/selftest fall back to when --core is omitted.
func DefaultCoreName() string {
	return drbg.DefaultConfig().Core.Name
}

// Prefix is the prefix of the git tag for a version
const Prefix = "v"

// version is a private field and should be set when compiling with --ldflags="-X github.com/coldtrace/drbg90a/cmd/version.version=vX.Y.Z"
var version = "v0.0.0-unset"

// gitCommitID is a private field and should be set when compiling with --ldflags="-X github.com/coldtrace/drbg90a/cmd/version.gitCommitID=<commit-id>"
var gitCommitID = ""

// Version returns the current drbgctl version
func Version() string {
	return version
}

// GitCommitID returns the git commit id from which it is being built
func GitCommitID() string {
	return gitCommitID
}

// SemverVersion returns the current semantic version (semver)
func SemverVersion() (semver.Version, error) {
	return semver.Make(strings.TrimPrefix(Version(), Prefix))
}
