// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewHMACMechanism_initialState(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	m := newHMACMechanism(CoreHMACSHA256)
	as.True(allZero(m.k), "K starts all-zero per SP 800-90A §10.1.2.1")
	for _, b := range m.v {
		as.Equal(byte(0x01), b, "V starts all-0x01 per SP 800-90A §10.1.2.1")
	}
}

func Test_HMACMechanism_seedThenGenerate_isDeterministic(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	run := func() []byte {
		m := newHMACMechanism(CoreHMACSHA256)
		require.NoError(t, m.seed(NewChain([]byte("entropy plus personalization bytes")), false))
		out := make([]byte, 48)
		require.NoError(t, m.generate(out, NewChain([]byte("addtl input")), 1))
		return out
	}

	as.Equal(run(), run())
}

func Test_HMACMechanism_update_secondRoundSkippedWhenEmpty(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	withEmpty := newHMACMechanism(CoreHMACSHA256)
	require.NoError(t, withEmpty.update(NewChain()))

	withNil := newHMACMechanism(CoreHMACSHA256)
	require.NoError(t, withNil.update(nil))

	as.Equal(withEmpty.k, withNil.k)
	as.Equal(withEmpty.v, withNil.v)
}

func Test_HMACMechanism_generateWithoutAddtl_stillRefreshesState(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	m := newHMACMechanism(CoreHMACSHA256)
	require.NoError(t, m.seed(NewChain([]byte("seed entropy for this test case")), false))
	kBefore := append([]byte(nil), m.k...)

	out := make([]byte, 32)
	require.NoError(t, m.generate(out, nil, 1))

	as.NotEqual(kBefore, m.k, "the post-generate update must still refresh K even with empty additional input")
}

func Test_HMACMechanism_zeroWipesState(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	m := newHMACMechanism(CoreHMACSHA1)
	require.NoError(t, m.seed(NewChain([]byte("some entropy")), false))
	m.zero()

	as.True(allZero(m.k))
	as.True(allZero(m.v))
}
