// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package generate

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/coldtrace/drbg90a"
)

var (
	numBytes int
	coreName string
	count    int
	pr       bool
	addtl    string
	verbose  bool
)

// coresByName maps the --core flag's accepted values to the Core each
// selects, spanning all three SP 800-90A mechanisms this package
// implements.
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

// NewGenerateCommand creates and returns the generate command.
func NewGenerateCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate pseudo-random bytes from a DRBG instance",
		Long: `Generate instantiates a DRBG core, draws pseudo-random output from it,
and writes the result hex-encoded, one line per --count request.

If --bytes is not specified, 32 bytes are generated per request.
If --core is not specified, hmac-sha256 is used.`,
		RunE: runGenerate,
	}

	cmd.Flags().IntVarP(&numBytes, "bytes", "n", 32, "Number of pseudo-random bytes to generate per request")
	cmd.Flags().StringVarP(&coreName, "core", "k", "hmac-sha256", "DRBG core to instantiate (hash-sha1|hash-sha256|hash-sha384|hash-sha512|hmac-sha1|hmac-sha256|hmac-sha384|hmac-sha512|ctr-aes128|ctr-aes192|ctr-aes256)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of generate requests to issue")
	cmd.Flags().BoolVarP(&pr, "prediction-resistance", "p", false, "Reseed before every generate request")
	cmd.Flags().StringVarP(&addtl, "addtl", "A", "", "Additional input mixed into each generate request")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// runGenerate is the main execution function for the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	if numBytes <= 0 {
		return writeString(cmd, "--bytes must be a positive integer")
	}
	if count <= 0 {
		return writeString(cmd, "--count must be a positive integer")
	}

	core, ok := coresByName[coreName]
	if !ok {
		return writeString(cmd, fmt.Sprintf("unknown --core %q", coreName))
	}

	h := drbg.NewHandle()
	if err := h.Instantiate(drbg.WithCore(core), drbg.WithPredictionResistance(pr)); err != nil {
		return writeError(cmd, "failed to instantiate DRBG", err)
	}
	defer func() { _ = h.Uninstantiate() }()

	writer := bufio.NewWriter(cmd.OutOrStdout())

	start := time.Now()

	out := make([]byte, numBytes)
	for i := 0; i < count; i++ {
		if err := h.Generate(out, []byte(addtl)); err != nil {
			return writeError(cmd, "error generating pseudo-random output", err)
		}
		if _, err := writer.WriteString(hex.EncodeToString(out) + "\n"); err != nil {
			return writeError(cmd, "error writing pseudo-random output", err)
		}
	}

	duration := time.Since(start)

	if err := writer.Flush(); err != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Error flushing writer: %v\n", err)
	}

	if verbose {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		average := duration / time.Duration(count)
		throughput := float64(count) / duration.Seconds()
		estimatedBytes := count * numBytes
		estimatedEntropy := math.Log2(256) * float64(numBytes)

		_, _ = fmt.Fprintln(cmd.OutOrStderr(), "")
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Core.....................: %s\n", core.Name)
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Start Time...............: %s\n", start.Format(time.RFC3339))
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Total requests issued....: %d\n", count)
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Total time taken.........: %s\n", duration)
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Average time per request.: %s\n", average)
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Throughput...............: %.2f requests/sec\n", throughput)
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Total output size........: %s\n", humanize.Bytes(uint64(estimatedBytes)))
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Output entropy per request: %.2f bits\n", estimatedEntropy)
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Memory used..............: %s\n", humanize.Bytes(memStats.Alloc))
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
