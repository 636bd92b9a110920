// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// Fragment is one link in a Chain: a borrowed byte slice plus the next
// fragment to visit. It never copies the slice it holds.
type Fragment struct {
	buf  []byte
	next *Fragment
}

// Chain is an ordered sequence of byte fragments visited without ever
// concatenating them into a single allocation, mirroring the linked
// gcry_drbg_string nodes the mechanisms splice together before hashing or
// MACing (V, additional input, a single separator byte, and so on).
type Chain struct {
	head *Fragment
	tail *Fragment
	n    int
}

// NewChain builds a Chain over parts, in order. A nil or empty slice is
// skipped so callers can pass optional additional input unconditionally.
func NewChain(parts ...[]byte) *Chain {
	c := &Chain{}
	for _, p := range parts {
		c.Append(p)
	}
	return c
}

// Append adds buf as the new last fragment. A zero-length buf is a no-op.
func (c *Chain) Append(buf []byte) *Chain {
	if len(buf) == 0 {
		return c
	}
	f := &Fragment{buf: buf}
	if c.tail == nil {
		c.head = f
		c.tail = f
	} else {
		c.tail.next = f
		c.tail = f
	}
	c.n += len(buf)
	return c
}

// Prepend splices buf in as the new first fragment. A zero-length buf is a
// no-op.
func (c *Chain) Prepend(buf []byte) *Chain {
	if len(buf) == 0 {
		return c
	}
	f := &Fragment{buf: buf, next: c.head}
	c.head = f
	if c.tail == nil {
		c.tail = f
	}
	c.n += len(buf)
	return c
}

// AppendChain splices other's fragments onto the end of c, sharing them
// rather than copying. other must not be used again afterward: its tail
// fragment's next pointer is left untouched, but c's tail now points into
// other's fragment list, so mutating other would corrupt c.
func (c *Chain) AppendChain(other *Chain) *Chain {
	if other == nil || other.head == nil {
		return c
	}
	if c.tail == nil {
		c.head = other.head
	} else {
		c.tail.next = other.head
	}
	c.tail = other.tail
	c.n += other.n
	return c
}

// Len reports the total number of bytes across all fragments.
func (c *Chain) Len() int {
	return c.n
}

// ForEach visits every fragment's bytes in order without copying.
func (c *Chain) ForEach(visit func([]byte)) {
	for f := c.head; f != nil; f = f.next {
		visit(f.buf)
	}
}

// Bytes flattens the chain into a single freshly allocated slice. The
// mechanisms do not call it: the hash and HMAC paths feed fragments
// straight to a streaming Write, and Block_Cipher_df copies fragments into
// its input block via ForEach.
func (c *Chain) Bytes() []byte {
	out := make([]byte, 0, c.n)
	c.ForEach(func(b []byte) {
		out = append(out, b...)
	})
	return out
}
