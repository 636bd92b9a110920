// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package reseed

import (
	"bufio"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldtrace/drbg90a"
)

var (
	coreName string
	addtl    string
	numBytes int
)

// coresByName mirrors the generate subcommand's core table so both
// commands accept the same --core spelling.
var coresByName = map[string]drbg.Core{
	"hash-sha1":   drbg.CoreHashSHA1,
	"hash-sha256": drbg.CoreHashSHA256,
	"hash-sha384": drbg.CoreHashSHA384,
	"hash-sha512": drbg.CoreHashSHA512,
	"hmac-sha1":   drbg.CoreHMACSHA1,
	"hmac-sha256": drbg.CoreHMACSHA256,
	"hmac-sha384": drbg.CoreHMACSHA384,
	"hmac-sha512": drbg.CoreHMACSHA512,
	"ctr-aes128":  drbg.CoreCTRAES128,
	"ctr-aes192":  drbg.CoreCTRAES192,
	"ctr-aes256":  drbg.CoreCTRAES256,
}

// NewReseedCommand creates and returns the reseed command.
func NewReseedCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "reseed",
		Short: "Instantiate a DRBG, reseed it with additional input, and show the effect",
		Long: `Reseed instantiates a DRBG core, generates one request, reseeds the
instance by drawing fresh entropy and mixing in --addtl, then generates
a second request from the same instance so the two outputs can be
compared.`,
		RunE: runReseed,
	}

	cmd.Flags().StringVarP(&coreName, "core", "k", "hmac-sha256", "DRBG core to instantiate")
	cmd.Flags().StringVarP(&addtl, "addtl", "A", "", "Additional input mixed into the reseed")
	cmd.Flags().IntVarP(&numBytes, "bytes", "n", 32, "Number of pseudo-random bytes to generate before and after reseed")

	return cmd
}

func runReseed(cmd *cobra.Command, args []string) error {
	if numBytes <= 0 {
		return writeString(cmd, "--bytes must be a positive integer")
	}

	core, ok := coresByName[coreName]
	if !ok {
		return writeString(cmd, fmt.Sprintf("unknown --core %q", coreName))
	}

	h := drbg.NewHandle()
	if err := h.Instantiate(drbg.WithCore(core)); err != nil {
		return writeError(cmd, "failed to instantiate DRBG", err)
	}
	defer func() { _ = h.Uninstantiate() }()

	before := make([]byte, numBytes)
	if err := h.Generate(before, nil); err != nil {
		return writeError(cmd, "error generating pre-reseed output", err)
	}

	if err := h.Reseed([]byte(addtl)); err != nil {
		return writeError(cmd, "error reseeding DRBG", err)
	}

	after := make([]byte, numBytes)
	if err := h.Generate(after, nil); err != nil {
		return writeError(cmd, "error generating post-reseed output", err)
	}

	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer func() { _ = writer.Flush() }()

	if _, err := fmt.Fprintf(writer, "before: %s\n", hex.EncodeToString(before)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "after:  %s\n", hex.EncodeToString(after)); err != nil {
		return err
	}
	return nil
}

func writeError(cmd *cobra.Command, msg string, err error) error {
	if w, ok := cmd.OutOrStdout().(*bufio.Writer); ok {
		_ = w.Flush()
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v", msg, err)
	return fmt.Errorf("%s: %w", msg, err)
}

func writeString(cmd *cobra.Command, msg string) error {
	if w, ok := cmd.OutOrStdout().(*bufio.Writer); ok {
		_ = w.Flush()
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s", msg)
	return fmt.Errorf("%s", msg)
}
