// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"fmt"
	"sync"
)

// global mirrors original_source/random/drbg.c's single process-wide
// gcry_drbg handle behind drbg_lock: one package-level Handle, one mutex.
// Handle itself stays independently instantiable (NewHandle) — the global
// is one use of the type, not the only use.
var (
	globalMu     sync.Mutex
	global       *Handle
	globalInited bool
)

// Init prepares the package-level DRBG. It is idempotent: a second call
// with full=true after the first is a no-op. full=false performs no
// instantiation, changes nothing and returns nil whether or not the
// package has already been initialized. The first full=true
// call instantiates the default core, HMAC-SHA-256 without prediction
// resistance.
func Init(full bool) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalInited {
		return nil
	}
	if !full {
		return nil
	}
	h := NewHandle()
	if err := h.Instantiate(); err != nil {
		return err
	}
	global = h
	globalInited = true
	return nil
}

func requireGlobal() (*Handle, error) {
	if !globalInited || global == nil {
		return nil, fmt.Errorf("%w: package not initialized, call Init(true) first", ErrInvalidArgument)
	}
	return global, nil
}

// Reinit tears down and re-instantiates the package-level Handle with a
// fresh personalization string, forwarding to Handle.Reinit.
func Reinit(pers []byte, opts ...Option) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	h, err := requireGlobal()
	if err != nil {
		return err
	}
	return h.Reinit(pers, opts...)
}

// Randomize fills out with pseudo-random bytes from the package-level
// Handle. level is accepted for interface parity with callers expecting a
// quality selector; this package provides a single quality — cryptographic
// — so level does not alter behavior.
func Randomize(out []byte, level int) error {
	return RandomizeWithAdditionalInput(out, nil, level)
}

// RandomizeWithAdditionalInput is Randomize plus caller-supplied
// additional input mixed into the generate request.
func RandomizeWithAdditionalInput(out []byte, addtl []byte, _ int) error {
	globalMu.Lock()
	h, err := requireGlobal()
	globalMu.Unlock()
	if err != nil {
		return err
	}
	return h.Generate(out, addtl)
}

// AddBytes reseeds the package-level Handle using buf as additional
// input. quality is accepted for interface parity, mirroring Randomize's
// level parameter.
func AddBytes(buf []byte, _ int) error {
	globalMu.Lock()
	h, err := requireGlobal()
	globalMu.Unlock()
	if err != nil {
		return err
	}
	return h.AddBytes(buf)
}

// CloseFDs forwards to the package-level Handle's CloseFDs.
func CloseFDs() error {
	globalMu.Lock()
	h, err := requireGlobal()
	globalMu.Unlock()
	if err != nil {
		return err
	}
	return h.CloseFDs()
}

// SelfTest runs the known-answer and boundary self-test suite.
func SelfTest() error {
	return RunSelfTests()
}
