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

func Test_HashDF_producesRequestedLength(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	out, err := hashDF(HashSHA256, NewChain([]byte("seed material")), 55)
	require.NoError(t, err)
	as.Len(out, 55)
}

func Test_HashDF_isDeterministic(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	a, err := hashDF(HashSHA1, NewChain([]byte("abc")), 55)
	require.NoError(t, err)
	b, err := hashDF(HashSHA1, NewChain([]byte("abc")), 55)
	require.NoError(t, err)
	as.Equal(a, b)
}

func Test_HashDF_differentOutLenChangesOutput(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	short, err := hashDF(HashSHA256, NewChain([]byte("abc")), 32)
	require.NoError(t, err)
	long, err := hashDF(HashSHA256, NewChain([]byte("abc")), 55)
	require.NoError(t, err)

	// out_len is folded into the hashed prefix, so the first block differs
	// even though it is the same input chain.
	as.NotEqual(short, long[:32])
}

func Test_HashMechanism_seedThenGenerate_isDeterministic(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	run := func() []byte {
		m := newHashMechanism(CoreHashSHA256)
		require.NoError(t, m.seed(NewChain([]byte("entropy-48-bytes-of-test-materialxx")), false))
		out := make([]byte, 40)
		require.NoError(t, m.generate(out, NewChain([]byte("addtl")), 1))
		return out
	}

	as.Equal(run(), run())
}

func Test_HashMechanism_reseedChangesState(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	m := newHashMechanism(CoreHashSHA256)
	require.NoError(t, m.seed(NewChain([]byte("initial entropy material for seed")), false))

	before := make([]byte, 32)
	require.NoError(t, m.generate(before, nil, 1))

	require.NoError(t, m.seed(NewChain([]byte("different reseed entropy material")), true))
	after := make([]byte, 32)
	require.NoError(t, m.generate(after, nil, 1))

	as.NotEqual(before, after)
}

func Test_HashMechanism_zeroWipesState(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	m := newHashMechanism(CoreHashSHA1)
	require.NoError(t, m.seed(NewChain([]byte("some entropy")), false))
	m.zero()

	as.True(allZero(m.v))
	as.True(allZero(m.c))
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
