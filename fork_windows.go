// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build windows

package drbg

// reseedIfForked is a no-op on Windows: there is no fork() equivalent, so
// a process identity change between calls cannot happen.
func (h *Handle) reseedIfForked() error {
	return nil
}
