// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"crypto/rand"
	"fmt"
	"io"
)

// EntropySource supplies the DRBG with bytes at "very strong" quality —
// drawn from the OS RNG or a hardware RNG, never from DRBG output itself.
// GetEntropy must loop until it has filled n bytes or hit a fatal error;
// it must never return fewer than n bytes without an error.
type EntropySource interface {
	GetEntropy(n int) ([]byte, error)
}

// Close is implemented optionally by an EntropySource that holds a file
// descriptor or similar handle; Handle.CloseFDs forwards to it when present.
type entropyCloser interface {
	Close() error
}

// systemEntropySource reads from crypto/rand.Reader, the OS-backed CSPRNG.
type systemEntropySource struct{}

func (systemEntropySource) GetEntropy(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("%w: entropy source read failed: %v", ErrGeneralFailure, err)
	}
	return buf, nil
}

// testHook lets a known-answer test inject canned entropy, or force a
// failure, without any global or package-level state. It is a field on
// Handle rather than a package variable so parallel tests never collide
// over it.
type testHook struct {
	// fixedEntropy, if non-nil, is served in order (one buffer consumed per
	// call) instead of invoking the configured EntropySource. Each buffer
	// is handed out as a copy, so the wipe of the entropy buffer after
	// seeding leaves the queued data intact.
	fixedEntropy [][]byte

	// failSeedSource, if true, makes every GetEntropy call fail without
	// touching the configured source.
	failSeedSource bool
}

// next pops the first queued fixed-entropy buffer, or reports there is
// none left.
func (h *testHook) next() ([]byte, bool) {
	if h == nil || len(h.fixedEntropy) == 0 {
		return nil, false
	}
	buf := h.fixedEntropy[0]
	h.fixedEntropy = h.fixedEntropy[1:]
	return buf, true
}

// getEntropy is the single gate every entropy draw passes through:
// test-hook failure short-circuits without touching out-of-band state, a
// queued canned buffer takes priority over the real source, and otherwise
// the real source is asked for exactly n bytes.
func (h *Handle) getEntropy(n int) ([]byte, error) {
	if h.hook != nil {
		if h.hook.failSeedSource {
			return nil, fmt.Errorf("%w: entropy source forced to fail by test hook", ErrGeneralFailure)
		}
		if buf, ok := h.hook.next(); ok {
			if len(buf) != n {
				return nil, fmt.Errorf("%w: test entropy length %d does not match requested %d", ErrInvalidArgument, len(buf), n)
			}
			return append([]byte(nil), buf...), nil
		}
	}
	src := h.entropy
	if src == nil {
		src = systemEntropySource{}
	}
	buf, err := src.GetEntropy(n)
	if err != nil {
		return nil, err
	}
	if len(buf) != n {
		return nil, fmt.Errorf("%w: entropy source returned %d bytes, wanted %d", ErrGeneralFailure, len(buf), n)
	}
	return buf, nil
}
