// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// HashAlg identifies one of the four hash primitives SP 800-90A permits for
// the Hash and HMAC mechanisms.
type HashAlg int

const (
	HashSHA1 HashAlg = iota
	HashSHA256
	HashSHA384
	HashSHA512
)

func (a HashAlg) newHash() (hash.Hash, error) {
	switch a {
	case HashSHA1:
		return sha1.New(), nil
	case HashSHA256:
		return sha256.New(), nil
	case HashSHA384:
		return sha512.New384(), nil
	case HashSHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: unknown hash algorithm %d", ErrInvalidArgument, a)
	}
}

// digestSize reports the output length of alg in bytes, which doubles as
// the mechanism's block_len for Hash and HMAC DRBG.
func (a HashAlg) digestSize() int {
	switch a {
	case HashSHA1:
		return sha1.Size
	case HashSHA256:
		return sha256.Size
	case HashSHA384:
		return sha512.Size384
	case HashSHA512:
		return sha512.Size
	default:
		return 0
	}
}

// digest computes Hash(alg) over the concatenation of chain's fragments
// without ever materializing that concatenation, by streaming each
// fragment into the running hash state. Hash_df and the other unkeyed
// hash-DRBG steps call this directly, never mac with a nil key.
func digest(alg HashAlg, chain *Chain) ([]byte, error) {
	h, err := alg.newHash()
	if err != nil {
		return nil, err
	}
	chain.ForEach(func(b []byte) {
		h.Write(b)
	})
	return h.Sum(nil), nil
}

// mac computes HMAC(alg, key) over chain's fragments, streamed the same way
// as in digest.
func mac(alg HashAlg, key []byte, chain *Chain) ([]byte, error) {
	newHash, err := hmacConstructor(alg)
	if err != nil {
		return nil, err
	}
	h := hmac.New(newHash, key)
	chain.ForEach(func(b []byte) {
		h.Write(b)
	})
	return h.Sum(nil), nil
}

func hmacConstructor(alg HashAlg) (func() hash.Hash, error) {
	switch alg {
	case HashSHA1:
		return sha1.New, nil
	case HashSHA256:
		return sha256.New, nil
	case HashSHA384:
		return sha512.New384, nil
	case HashSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: unknown hash algorithm %d", ErrInvalidArgument, alg)
	}
}

// BlockAlg identifies one of the three AES key sizes SP 800-90A permits for
// CTR DRBG.
type BlockAlg int

const (
	BlockAES128 BlockAlg = iota
	BlockAES192
	BlockAES256
)

func (a BlockAlg) keyLen() int {
	switch a {
	case BlockAES128:
		return 16
	case BlockAES192:
		return 24
	case BlockAES256:
		return 32
	default:
		return 0
	}
}

// newCipher builds an AES block cipher from key, which must be exactly
// a.keyLen() bytes.
func (a BlockAlg) newCipher(key []byte) (cipher.Block, error) {
	if len(key) != a.keyLen() {
		return nil, fmt.Errorf("%w: AES key must be %d bytes, got %d", ErrInvalidArgument, a.keyLen(), len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneralFailure, err)
	}
	return block, nil
}

// ecbEncrypt encrypts exactly one block_len-sized block of src into dst
// under block, with no chaining. SP 800-90A's CTR DRBG only ever needs
// single-block ECB, so this sidesteps pulling in a general ECB mode.
func ecbEncrypt(block cipher.Block, dst, src []byte) error {
	bs := block.BlockSize()
	if len(src) != bs || len(dst) != bs {
		return fmt.Errorf("%w: ECB operand must be exactly %d bytes", ErrGeneralFailure, bs)
	}
	block.Encrypt(dst, src)
	return nil
}
