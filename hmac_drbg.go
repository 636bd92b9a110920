// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// hmacMechanism implements HMAC_DRBG (SP 800-90A §10.1.2). Unlike Hash
// DRBG, the same two-round update runs identically at initial seed and at
// every reseed — there is no separate initial-seed codepath — so seed
// ignores isReseed.
type hmacMechanism struct {
	alg HashAlg
	k   []byte
	v   []byte
}

func newHMACMechanism(core Core) *hmacMechanism {
	m := &hmacMechanism{
		alg: core.HashAlg,
		k:   make([]byte, core.BlockLen),
		v:   make([]byte, core.BlockLen),
	}
	for i := range m.v {
		m.v[i] = 0x01
	}
	return m
}

func (m *hmacMechanism) seed(material *Chain, _ bool) error {
	return m.update(material)
}

// update is the HMAC_DRBG Update function of SP 800-90A §10.1.2.2: two
// rounds of K/V refresh when seed material is present, collapsing to a
// single round when it is not. The second round is skipped entirely when
// seedChain is empty, which is how generate's post-step update(addtl-or-
// empty) collapses to a single round.
func (m *hmacMechanism) update(seedChain *Chain) error {
	k1, err := mac(m.alg, m.k, NewChain(m.v, []byte{0x00}).AppendChain(seedChain))
	if err != nil {
		return err
	}
	copy(m.k, k1)

	v1, err := mac(m.alg, m.k, NewChain(m.v))
	if err != nil {
		return err
	}
	copy(m.v, v1)

	if seedChain == nil || seedChain.Len() == 0 {
		return nil
	}

	k2, err := mac(m.alg, m.k, NewChain(m.v, []byte{0x01}).AppendChain(seedChain))
	if err != nil {
		return err
	}
	copy(m.k, k2)

	v2, err := mac(m.alg, m.k, NewChain(m.v))
	if err != nil {
		return err
	}
	copy(m.v, v2)
	return nil
}

func (m *hmacMechanism) generate(out []byte, addtl *Chain, _ uint64) error {
	if addtl != nil && addtl.Len() > 0 {
		if err := m.update(addtl); err != nil {
			return err
		}
	}

	filled := 0
	for filled < len(out) {
		v, err := mac(m.alg, m.k, NewChain(m.v))
		if err != nil {
			return err
		}
		copy(m.v, v)
		filled += copy(out[filled:], m.v)
	}

	return m.update(addtl)
}

func (m *hmacMechanism) zero() {
	zeroBytes(m.k)
	zeroBytes(m.v)
}
