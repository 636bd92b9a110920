// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !windows

package drbg

import "os"

// reseedIfForked compares the live process id against the one captured
// at the last seed and reseeds before proceeding on a mismatch: a reseed
// changes K and V entirely, so the forked child and its parent diverge
// from that point on rather than emitting identical output streams.
func (h *Handle) reseedIfForked() error {
	if os.Getpid() == h.ownerPID {
		return nil
	}
	return h.seedLocked(nil, true)
}
