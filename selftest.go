// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"bytes"
	"fmt"
	"sync"
)

// selfTestOnce gates RunSelfTests so the known-answer and boundary suite
// runs exactly once per process and every later caller gets the cached
// result.
var (
	selfTestOnce sync.Once
	selfTestErr  error
)

// fixedEntropySource replays a canned queue of buffers instead of reading
// crypto/rand, for tests that want a full EntropySource rather than the
// narrower per-Handle testHook.
type fixedEntropySource struct {
	buffers [][]byte
}

func (f *fixedEntropySource) GetEntropy(n int) ([]byte, error) {
	if len(f.buffers) == 0 {
		return nil, fmt.Errorf("%w: fixed entropy source exhausted", ErrGeneralFailure)
	}
	buf := f.buffers[0]
	f.buffers = f.buffers[1:]
	if len(buf) != n {
		return nil, fmt.Errorf("%w: fixed entropy buffer length %d does not match requested %d", ErrInvalidArgument, len(buf), n)
	}
	return buf, nil
}

// failingEntropySource always fails, used to exercise the entropy-failure
// boundary check below.
type failingEntropySource struct{}

func (failingEntropySource) GetEntropy(int) ([]byte, error) {
	return nil, fmt.Errorf("%w: entropy source forced to fail", ErrGeneralFailure)
}

// RunSelfTests runs the full self-test suite once per process and caches
// the result: the NIST CAVP known-answer vectors in katVectors, a
// determinism check across every supported core, and a handful of
// boundary-condition checks. Any failure is reported as ErrSelfTestFailed
// and should be treated as fatal to the process by the caller.
func RunSelfTests() error {
	selfTestOnce.Do(func() {
		selfTestErr = runSelfTestsOnce()
	})
	return selfTestErr
}

func runSelfTestsOnce() error {
	for _, v := range katVectors {
		if err := runKATVector(v); err != nil {
			return fmt.Errorf("%w: %s known-answer test: %v", ErrSelfTestFailed, v.name, err)
		}
	}
	for _, core := range allCores {
		if err := determinismCheck(core); err != nil {
			return fmt.Errorf("%w: %s determinism check: %v", ErrSelfTestFailed, core.Name, err)
		}
	}
	if err := boundaryChecks(); err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTestFailed, err)
	}
	return nil
}

// determinismCheck covers every core the katVectors table doesn't reach
// directly: for fixed entropy and additional input at each call, two
// freshly instantiated handles of the same core must produce identical
// output. This catches a core wired to the wrong state size or primitive
// even without a literal oracle value for it.
func determinismCheck(core Core) error {
	initEntropy := fillPattern((core.SecurityStrength*3+1)/2, 0x5A)
	reseedEntropy := fillPattern(core.SecurityStrength, 0x3C)
	addtlA := fillPattern(core.BlockLen, 0x11)
	addtlB := fillPattern(core.BlockLen, 0x22)

	run := func() ([]byte, error) {
		h := NewHandle()
		h.hook = &testHook{fixedEntropy: [][]byte{initEntropy}}
		if err := h.Instantiate(WithCore(core)); err != nil {
			return nil, err
		}
		defer h.Uninstantiate()

		h.hook = &testHook{fixedEntropy: [][]byte{reseedEntropy}}
		if err := h.Reseed(nil); err != nil {
			return nil, err
		}

		discard := make([]byte, 80)
		if err := h.Generate(discard, addtlA); err != nil {
			return nil, err
		}
		out := make([]byte, 80)
		if err := h.Generate(out, addtlB); err != nil {
			return nil, err
		}
		return out, nil
	}

	a, err := run()
	if err != nil {
		return err
	}
	b, err := run()
	if err != nil {
		return err
	}
	if !bytes.Equal(a, b) {
		return fmt.Errorf("two identically-seeded handles diverged")
	}
	return nil
}

// boundaryChecks exercises a handful of edge conditions that need no
// literal vector data: a chunk boundary at exactly maxRequestBytes, and a
// hard entropy-source failure.
func boundaryChecks() error {
	h := NewHandle()
	h.hook = &testHook{fixedEntropy: [][]byte{fillPattern((CoreHMACSHA256.SecurityStrength*3+1)/2, 0x01)}}
	if err := h.Instantiate(WithCore(CoreHMACSHA256)); err != nil {
		return fmt.Errorf("instantiate for boundary checks: %w", err)
	}
	defer h.Uninstantiate()

	// The oversized-additional-input rejection (maxAddtl = 2^35 bytes) is
	// exercised in selftest_test.go against a single length comparison,
	// not here: allocating a real 2^35-byte buffer on every process start
	// to drive this self-test would be its own denial of service.

	out := make([]byte, maxRequestBytes)
	h.hook = &testHook{fixedEntropy: [][]byte{fillPattern(CoreHMACSHA256.SecurityStrength, 0x02)}}
	if err := h.Generate(out, nil); err != nil {
		return fmt.Errorf("exact-chunk-boundary request failed: %w", err)
	}

	failing := NewHandle()
	if err := failing.Instantiate(WithCore(CoreHMACSHA256), WithEntropySource(failingEntropySource{})); err == nil {
		return fmt.Errorf("instantiate with a failing entropy source unexpectedly succeeded")
	}

	return nil
}

func fillPattern(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}
