// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import "encoding/binary"

// beUint32 encodes v as a 4-byte big-endian value.
func beUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// beUint64 encodes v as an 8-byte big-endian value.
func beUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// addBigEndian adds add to dst in place, modulo 2^(8*len(dst)), treating
// both as big-endian unsigned integers with add right-aligned against dst
// (zero-extended on its left) when shorter. Carry propagates through the
// remaining high-order bytes of dst and is discarded past the top. Used
// for the V update steps in Hash DRBG generate.
func addBigEndian(dst, add []byte) {
	if len(add) > len(dst) {
		panic("drbg: addBigEndian addend longer than destination")
	}
	var carry uint16
	j := len(add) - 1
	for i := len(dst) - 1; i >= 0; i-- {
		var addByte byte
		if j >= 0 {
			addByte = add[j]
			j--
		}
		sum := uint16(dst[i]) + uint16(addByte) + carry
		dst[i] = byte(sum)
		carry = sum >> 8
	}
}

// incrementBigEndian adds one to dst in place, treating it as a big-endian
// unsigned integer, discarding carry out of the most significant byte. Used
// to step the CTR DRBG's counter block between AES invocations.
func incrementBigEndian(dst []byte) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i]++
		if dst[i] != 0 {
			return
		}
	}
}
