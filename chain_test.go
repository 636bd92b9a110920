// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Chain_Bytes(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	cases := []struct {
		name  string
		parts [][]byte
		want  []byte
	}{
		{"empty", nil, []byte{}},
		{"single", [][]byte{{1, 2, 3}}, []byte{1, 2, 3}},
		{"multiple", [][]byte{{1, 2}, {3}, {4, 5}}, []byte{1, 2, 3, 4, 5}},
		{"skips nil and empty fragments", [][]byte{nil, {1}, {}, {2}}, []byte{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewChain(tc.parts...)
			as.Equal(tc.want, c.Bytes())
			as.Equal(len(tc.want), c.Len())
		})
	}
}

func Test_Chain_Prepend(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	c := NewChain([]byte{2, 3})
	c.Prepend([]byte{1})
	as.Equal([]byte{1, 2, 3}, c.Bytes())

	c.Prepend(nil)
	as.Equal([]byte{1, 2, 3}, c.Bytes(), "prepending an empty slice is a no-op")
}

func Test_Chain_AppendChain(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	a := NewChain([]byte{1, 2})
	b := NewChain([]byte{3}, []byte{4, 5})
	a.AppendChain(b)
	as.Equal([]byte{1, 2, 3, 4, 5}, a.Bytes())
	as.Equal(5, a.Len())

	as.Equal([]byte{9}, NewChain().AppendChain(NewChain([]byte{9})).Bytes())
	as.Empty(NewChain().AppendChain(nil).Bytes())
}

func Test_Chain_ForEach_doesNotCopy(t *testing.T) {
	t.Parallel()
	as := assert.New(t)

	buf := []byte{1, 2, 3}
	c := NewChain(buf)
	var seen []byte
	c.ForEach(func(b []byte) {
		seen = b
	})
	as.Same(&buf[0], &seen[0], "ForEach must hand back the original backing array, not a copy")
}
