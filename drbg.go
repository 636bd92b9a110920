// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"fmt"
	"os"
	"sync"
)

// Handle is one DRBG instance: a selected core, the mechanism state it
// owns, and the bookkeeping (reseed counter, seeded flag, owning process
// id) the generic controller needs. All public methods serialize through
// mu, held for the entire operation — there are no internal suspension
// points, matching the single-lock model this package generalizes.
type Handle struct {
	mu sync.Mutex

	core                 Core
	mech                 mechanism
	predictionResistance bool
	entropy              EntropySource
	hook                 *testHook

	seeded        bool
	reseedCounter uint64
	ownerPID      int
}

// NewHandle returns an uninstantiated Handle. Call Instantiate before any
// other method.
func NewHandle() *Handle {
	return &Handle{}
}

func newMechanism(core Core) mechanism {
	switch core.Mechanism {
	case MechanismHash:
		return newHashMechanism(core)
	case MechanismHMAC:
		return newHMACMechanism(core)
	case MechanismCTR:
		return newCTRMechanism(core)
	default:
		return nil
	}
}

// Instantiate seeds h from its entropy source with the given options: a
// core selection, a prediction-resistance flag, and an optional
// personalization string mixed into the initial seed.
func (h *Handle) Instantiate(opts ...Option) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.instantiateLocked(opts...)
}

func (h *Handle) instantiateLocked(opts ...Option) error {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return err
	}
	h.core = cfg.Core
	h.predictionResistance = cfg.PredictionResistance
	h.entropy = cfg.EntropySource
	h.mech = newMechanism(cfg.Core)
	return h.seedLocked(cfg.Personalization, false)
}

// seedLocked draws entropy and folds it plus addtl into the mechanism:
// security_strength bytes of entropy on reseed, ceil(security_strength*3/2)
// on initial seed, the entropy sizing NIST SP 800-90A §9.1/§9.2 require.
func (h *Handle) seedLocked(addtl []byte, isReseed bool) error {
	strength := h.core.SecurityStrength
	entropyLen := strength
	if !isReseed {
		entropyLen = (strength*3 + 1) / 2
	}
	entropyBuf, err := h.getEntropy(entropyLen)
	if err != nil {
		return err
	}
	defer zeroBytes(entropyBuf)

	material := NewChain(entropyBuf, addtl)
	if err := h.mech.seed(material, isReseed); err != nil {
		return err
	}
	h.seeded = true
	h.reseedCounter = 1
	h.ownerPID = os.Getpid()
	return nil
}

// Reseed mixes fresh entropy and optional caller-supplied additional
// input into h.
func (h *Handle) Reseed(addtl []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.seeded {
		return fmt.Errorf("%w: handle is not instantiated", ErrInvalidArgument)
	}
	if len(addtl) > maxAddtl {
		return fmt.Errorf("%w: additional input length %d exceeds maximum %d", ErrInvalidArgument, len(addtl), maxAddtl)
	}
	return h.seedLocked(addtl, true)
}

// Generate fills out with pseudo-random bytes, including the >2^16-byte
// chunking wrapper and the pre-generate reseed the prediction-resistance
// and reseed-counter-overflow and fork-divergence cases all force.
func (h *Handle) Generate(out []byte, addtl []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(out) == 0 {
		return fmt.Errorf("%w: output buffer must be non-empty", ErrInvalidArgument)
	}
	if !h.seeded {
		return fmt.Errorf("%w: handle is not instantiated", ErrInvalidArgument)
	}
	if len(addtl) > maxAddtl {
		return fmt.Errorf("%w: additional input length %d exceeds maximum %d", ErrInvalidArgument, len(addtl), maxAddtl)
	}

	if err := h.reseedIfForked(); err != nil {
		return err
	}

	if len(out) > maxRequestBytes {
		return h.generateLongLocked(out, addtl)
	}
	return h.generateChunkLocked(out, addtl)
}

// generateLongLocked splits an output buffer larger than maxRequestBytes
// into chunks: each chunk is a fresh SP 800-90A request, and the reseed
// counter advances once per chunk, not once per call.
func (h *Handle) generateLongLocked(out, addtl []byte) error {
	remaining := out
	for len(remaining) > 0 {
		n := maxRequestBytes
		if n > len(remaining) {
			n = len(remaining)
		}
		if err := h.generateChunkLocked(remaining[:n], addtl); err != nil {
			return err
		}
		remaining = remaining[n:]
	}
	return nil
}

// generateChunkLocked is one SP 800-90A-sized request: at most
// maxRequestBytes, with the reseed-counter-overflow check, the
// prediction-resistance and unseeded pre-generate reseed, and the actual
// mechanism-level generate call.
func (h *Handle) generateChunkLocked(out, addtl []byte) error {
	if h.reseedCounter > maxReseedCount {
		h.seeded = false
	}

	useAddtl := addtl
	if h.predictionResistance || !h.seeded {
		if err := h.seedLocked(addtl, true); err != nil {
			return err
		}
		useAddtl = nil
	}

	if err := h.mech.generate(out, NewChain(useAddtl), h.reseedCounter); err != nil {
		return err
	}
	h.reseedCounter++
	return nil
}

// Uninstantiate destroys h's secret state. h can be re-seeded afterward
// via Instantiate.
func (h *Handle) Uninstantiate() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.uninstantiateLocked()
}

func (h *Handle) uninstantiateLocked() error {
	if h.mech != nil {
		h.mech.zero()
	}
	h.mech = nil
	h.seeded = false
	h.reseedCounter = 0
	h.ownerPID = 0
	return nil
}

// Reinit is the reinitialize control request restored from
// original_source/random/drbg.c's GCRYCTL_DRBG_REINIT: it tears h down
// completely and performs a fresh Instantiate. opts retain the previously
// selected core and prediction-resistance setting unless overridden; pers
// becomes the new personalization string.
func (h *Handle) Reinit(pers []byte, opts ...Option) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	base := []Option{
		WithCore(h.core),
		WithPredictionResistance(h.predictionResistance),
		WithEntropySource(h.entropy),
		WithPersonalization(pers),
	}
	if err := h.uninstantiateLocked(); err != nil {
		return err
	}
	return h.instantiateLocked(append(base, opts...)...)
}

// AddBytes reseeds h using buf as additional input, entropy still drawn
// from the configured source.
func (h *Handle) AddBytes(buf []byte) error {
	return h.Reseed(buf)
}

// CloseFDs forwards to the configured EntropySource if it holds a file
// descriptor or similar resource. The default crypto/rand-backed source
// has nothing to close.
func (h *Handle) CloseFDs() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if closer, ok := h.entropy.(entropyCloser); ok {
		return closer.Close()
	}
	return nil
}

// Seeded reports whether h currently holds seeded state.
func (h *Handle) Seeded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.seeded
}

// ReseedCounter reports the current reseed counter, mainly useful in
// tests asserting chunking and reseed behavior.
func (h *Handle) ReseedCounter() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reseedCounter
}
