// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package drbg implements the three NIST SP 800-90A Rev. 1 deterministic
// random bit generator mechanisms — Hash_DRBG, HMAC_DRBG, and CTR_DRBG —
// parameterized by an underlying primitive (SHA-1/256/384/512 for the hash
// mechanisms, AES-128/192/256 for CTR) and by whether prediction resistance
// is enabled.
//
// A Handle is the generator: Instantiate seeds it from an entropy source,
// Generate produces output, Reseed mixes in fresh entropy and optional
// caller material, and Uninstantiate destroys its secret state. All public
// Handle operations serialize through a single mutex held for the whole
// operation, matching the single-mutable-state model of the library this
// package generalizes.
//
// The entropy source, and the hash/HMAC/block-cipher primitives, are
// narrow external contracts (EntropySource, and the unexported digest/mac/
// ecbEncrypt adapter backed by the standard library) rather than concerns
// this package owns.
package drbg
