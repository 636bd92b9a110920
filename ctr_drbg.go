// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"crypto/cipher"
	"fmt"
)

// ctrMechanism implements CTR_DRBG (SP 800-90A §10.2.1) with
// Block_Cipher_df. K and V start zero-filled, as the standard's
// CTR_DRBG_Instantiate_algorithm requires before the first update call.
type ctrMechanism struct {
	alg      BlockAlg
	keyLen   int
	blockLen int
	stateLen int

	k      []byte
	v      []byte
	dfData []byte // preserved across update's reseed_code 2 -> 3 pair
}

func newCTRMechanism(core Core) *ctrMechanism {
	return &ctrMechanism{
		alg:      core.BlockAlg,
		keyLen:   core.KeyLen,
		blockLen: core.BlockLen,
		stateLen: core.StateLen,
		k:        make([]byte, core.KeyLen),
		v:        make([]byte, core.BlockLen),
	}
}

// bcc is the CBC-MAC-like chaining function BCC of SP 800-90A §10.4.3.
// data must already be a whole multiple of block's block size; padding is
// the caller's responsibility (blockCipherDF's S construction).
func bcc(block cipher.Block, data []byte) ([]byte, error) {
	blockLen := block.BlockSize()
	chainingValue := make([]byte, blockLen)
	next := make([]byte, blockLen)
	for off := 0; off < len(data); off += blockLen {
		for i := 0; i < blockLen; i++ {
			next[i] = chainingValue[i] ^ data[off+i]
		}
		if err := ecbEncrypt(block, chainingValue, next); err != nil {
			return nil, err
		}
	}
	return chainingValue, nil
}

// blockCipherDF is Block_Cipher_df, SP 800-90A §10.4.2.
func blockCipherDF(alg BlockAlg, keyLen int, input *Chain, outLen int) ([]byte, error) {
	const blockLen = 16
	if outLen > 64 {
		return nil, fmt.Errorf("%w: Block_Cipher_df output length %d exceeds 64 bytes", ErrGeneralFailure, outLen)
	}

	s := make([]byte, blockLen) // IV, counter written into its first 4 bytes below
	s = append(s, beUint32(uint32(input.Len()))...)
	s = append(s, beUint32(uint32(outLen))...)
	input.ForEach(func(b []byte) { s = append(s, b...) })
	s = append(s, 0x80)
	for len(s)%blockLen != 0 {
		s = append(s, 0x00)
	}

	kFixedFull := make([]byte, 32)
	for i := range kFixedFull {
		kFixedFull[i] = byte(i)
	}
	fixedCipher, err := alg.newCipher(kFixedFull[:keyLen])
	if err != nil {
		return nil, err
	}

	need := keyLen + blockLen
	temp := make([]byte, 0, need+blockLen)
	for i := uint32(0); len(temp) < need; i++ {
		copy(s[:4], beUint32(i))
		block, err := bcc(fixedCipher, s)
		if err != nil {
			return nil, err
		}
		temp = append(temp, block...)
	}
	temp = temp[:need]
	defer zeroBytes(temp)

	outCipher, err := alg.newCipher(temp[:keyLen])
	if err != nil {
		return nil, err
	}
	x := append([]byte(nil), temp[keyLen:keyLen+blockLen]...)

	out := make([]byte, 0, outLen+blockLen)
	for len(out) < outLen {
		next := make([]byte, blockLen)
		if err := ecbEncrypt(outCipher, next, x); err != nil {
			return nil, err
		}
		x = next
		out = append(out, x...)
	}
	return out[:outLen], nil
}

// update is shared by seed (reseed_code 0/1) and generate's pre/post-step
// calls (reseed_code 2/3). reseed_code 3 does not derive df_data itself: it
// reuses the df_data the paired code-2 call derived from the same
// additional input. Every call other than code 2 wipes df_data when it
// returns, so a generate with no additional input (and hence no code-2
// call) runs its post-step over all-zero df_data, the 0^seedlen input
// CTR_DRBG_Update takes for empty additional input.
func (m *ctrMechanism) update(addtl *Chain, reseedCode int) error {
	if reseedCode < 3 {
		df, err := blockCipherDF(m.alg, m.keyLen, addtl, m.stateLen)
		if err != nil {
			return err
		}
		m.dfData = df
	}
	if reseedCode != 2 {
		defer zeroBytes(m.dfData)
	}

	block, err := m.alg.newCipher(m.k)
	if err != nil {
		return err
	}

	temp := make([]byte, 0, m.stateLen+m.blockLen)
	for len(temp) < m.stateLen {
		incrementBigEndian(m.v)
		enc := make([]byte, m.blockLen)
		if err := ecbEncrypt(block, enc, m.v); err != nil {
			return err
		}
		temp = append(temp, enc...)
	}
	temp = temp[:m.stateLen]
	defer zeroBytes(temp)

	for i := range temp {
		temp[i] ^= m.dfData[i]
	}
	copy(m.k, temp[:m.keyLen])
	copy(m.v, temp[m.keyLen:m.stateLen])
	return nil
}

func (m *ctrMechanism) seed(material *Chain, isReseed bool) error {
	code := 0
	if isReseed {
		code = 1
	}
	return m.update(material, code)
}

func (m *ctrMechanism) generate(out []byte, addtl *Chain, _ uint64) error {
	if addtl != nil && addtl.Len() > 0 {
		if err := m.update(addtl, 2); err != nil {
			return err
		}
	}

	block, err := m.alg.newCipher(m.k)
	if err != nil {
		return err
	}
	filled := 0
	for filled < len(out) {
		incrementBigEndian(m.v)
		enc := make([]byte, m.blockLen)
		if err := ecbEncrypt(block, enc, m.v); err != nil {
			return err
		}
		filled += copy(out[filled:], enc)
	}

	return m.update(addtl, 3)
}

func (m *ctrMechanism) zero() {
	zeroBytes(m.k)
	zeroBytes(m.v)
	zeroBytes(m.dfData)
}
