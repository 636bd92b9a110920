// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// zeroBytes overwrites b with zeros in place. Go has no portable
// equivalent of libgcrypt's locked, wipe-on-free secure-memory allocator;
// a locked memory allocator is an operating-system-level facility outside
// this package's scope. The mechanisms' V, C and key buffers are zeroed
// through this by zero(); the entropy buffer, the Hashgen counter copy, the
// CTR temp buffers and the CTR df_data are zeroed after use. Other
// intermediate secret values (digest and HMAC outputs, hashDF results,
// single-block cipher outputs, AES key schedules) are not zeroed.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
