// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import "errors"

// ErrorCode classifies a failure into the closed taxonomy a caller can act
// on: an invalid argument never mutates state, an entropy or primitive
// failure leaves the Handle exactly where it was (or destroyed, for a
// failed reinstantiate), and a self-test failure is expected to be treated
// as fatal to the process.
type ErrorCode int

const (
	// ErrCodeOK indicates success. Never returned as part of an error value;
	// present so ErrorCode has a well-defined zero value.
	ErrCodeOK ErrorCode = iota

	// ErrCodeInvalidArgument covers a null/empty buffer where one was
	// required, a length exceeding an SP 800-90A cap, or an unsupported
	// core.
	ErrCodeInvalidArgument

	// ErrCodeOutOfMemory covers secure-memory allocation failure.
	ErrCodeOutOfMemory

	// ErrCodeGeneralFailure covers a fatal error from the entropy source or
	// an underlying primitive.
	ErrCodeGeneralFailure

	// ErrCodeSelfTestFailed covers a known-answer mismatch or missed sanity
	// check in the CAVS harness.
	ErrCodeSelfTestFailed
)

// String renders the error code using its taxonomy name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "OK"
	case ErrCodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case ErrCodeOutOfMemory:
		return "OUT_OF_MEMORY"
	case ErrCodeGeneralFailure:
		return "GENERAL_FAILURE"
	case ErrCodeSelfTestFailed:
		return "SELFTEST_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Sentinel errors for the taxonomy above. Wrap these with
// fmt.Errorf("...: %w", ErrX) for context; callers should compare with
// errors.Is rather than matching message text.
var (
	ErrInvalidArgument = errors.New("drbg: invalid argument")
	ErrOutOfMemory     = errors.New("drbg: out of memory")
	ErrGeneralFailure  = errors.New("drbg: general failure")
	ErrSelfTestFailed  = errors.New("drbg: self-test failed")
)

// codeOf maps a sentinel-wrapping error back to its ErrorCode, for callers
// that want the taxonomy as data rather than via errors.Is.
func codeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrCodeOK
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrOutOfMemory):
		return ErrCodeOutOfMemory
	case errors.Is(err, ErrSelfTestFailed):
		return ErrCodeSelfTestFailed
	default:
		return ErrCodeGeneralFailure
	}
}

// Code reports the ErrorCode a returned error maps to.
func Code(err error) ErrorCode {
	return codeOf(err)
}
