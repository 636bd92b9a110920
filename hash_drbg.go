// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// hashMechanism implements Hash_DRBG (SP 800-90A §10.1.1): V and C are
// both state_len bytes, refreshed through Hash_df at every seed and
// advanced by successive big-endian adds during generate.
type hashMechanism struct {
	alg      HashAlg
	stateLen int
	v        []byte
	c        []byte
}

func newHashMechanism(core Core) *hashMechanism {
	return &hashMechanism{
		alg:      core.HashAlg,
		stateLen: core.StateLen,
		v:        make([]byte, core.StateLen),
		c:        make([]byte, core.StateLen),
	}
}

// hashDF is Hash_df, SP 800-90A §10.4.1: a counter-prefixed hash loop that
// compresses input down to (or stretches it up to, via repeated blocks)
// exactly outLen bytes.
func hashDF(alg HashAlg, input *Chain, outLen int) ([]byte, error) {
	prefix := append([]byte{1}, beUint32(uint32(outLen)*8)...)
	out := make([]byte, 0, outLen+alg.digestSize())
	for len(out) < outLen {
		chain := NewChain(prefix).AppendChain(input)
		block, err := digest(alg, chain)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
		prefix[0]++
	}
	return out[:outLen], nil
}

func (m *hashMechanism) seed(material *Chain, isReseed bool) error {
	var vChain *Chain
	if isReseed {
		vChain = NewChain([]byte{0x01}, m.v).AppendChain(material)
	} else {
		vChain = material
	}
	newV, err := hashDF(m.alg, vChain, m.stateLen)
	if err != nil {
		return err
	}
	copy(m.v, newV)

	newC, err := hashDF(m.alg, NewChain([]byte{0x00}, m.v), m.stateLen)
	if err != nil {
		return err
	}
	copy(m.c, newC)
	return nil
}

func (m *hashMechanism) generate(out []byte, addtl *Chain, reseedCounter uint64) error {
	if addtl != nil && addtl.Len() > 0 {
		w, err := digest(m.alg, NewChain([]byte{0x02}, m.v).AppendChain(addtl))
		if err != nil {
			return err
		}
		addBigEndian(m.v, w)
	}

	if err := m.hashgen(out); err != nil {
		return err
	}

	h, err := digest(m.alg, NewChain([]byte{0x03}, m.v))
	if err != nil {
		return err
	}
	addBigEndian(m.v, h)
	addBigEndian(m.v, m.c)
	addBigEndian(m.v, beUint64(reseedCounter))
	return nil
}

// hashgen emits Hash(data), Hash(data+1), ... into out without disturbing
// V itself: data is a throwaway copy, per the Hashgen algorithm of
// SP 800-90A §10.1.1.4.
func (m *hashMechanism) hashgen(out []byte) error {
	data := append([]byte(nil), m.v...)
	defer zeroBytes(data)

	filled := 0
	for filled < len(out) {
		block, err := digest(m.alg, NewChain(data))
		if err != nil {
			return err
		}
		n := copy(out[filled:], block)
		filled += n
		if filled < len(out) {
			incrementBigEndian(data)
		}
	}
	return nil
}

func (m *hashMechanism) zero() {
	zeroBytes(m.v)
	zeroBytes(m.c)
}
