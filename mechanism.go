// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// mechanism is the capability set every DRBG mechanism variant provides:
// seed (the update operation at instantiate/reseed time) and generate. The
// original C source dispatches through a function-pointer vtable
// (gcry_drbg_state_ops); here the three variants are concrete types
// selected once, at Instantiate, and stored on the Handle.
type mechanism interface {
	// seed folds material into the running state. isReseed distinguishes
	// the initial seed (false) from every subsequent reseed (true) — the
	// Hash mechanism's 0x01 || V prefix (present on reseed only) and the
	// CTR mechanism's reseed_code 0-vs-1 both key off this.
	seed(material *Chain, isReseed bool) error

	// generate writes len(out) bytes and folds addtl into the state per
	// the mechanism's own generate algorithm. reseedCounter is the
	// current count (before the controller's post-call increment); only
	// the Hash mechanism's post-step consumes it.
	generate(out []byte, addtl *Chain, reseedCounter uint64) error

	// zero wipes all secret buffers the mechanism owns.
	zero()
}
