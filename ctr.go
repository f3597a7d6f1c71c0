package chaskey

import (
	"crypto/cipher"

	"github.com/codahale/chaskey/internal/lts"
	"github.com/codahale/chaskey/internal/mem"
)

// XORKeyStream XORs src with the cipher's keystream into dst, which must be
// at least as long as src. One counter value yields one block of keystream:
// the counter is encrypted with the forward permutation, then incremented by
// one modulo 2^128, unconditionally, even for a trailing partial block.
// Zero-length input leaves the counter untouched.
//
// XORKeyStream panics if called on a zero-value Cipher.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("chaskey: output smaller than input")
	}
	if c.mode != ModeCTR {
		panic("chaskey: cipher has no counter state")
	}

	for len(src) > 0 {
		ks := c.counter
		lts.Forward(&ks, &c.k)

		n := mem.XORBlock(dst, src, &ks)
		dst, src = dst[n:], src[n:]
		c.incCounter()
	}
}

// Counter returns the current counter value. Callers partitioning the
// keystream space across workers can snapshot it, pre-compute disjoint
// ranges, and construct one Cipher per range via NewCTR.
func (c *Cipher) Counter() [NonceSize]byte {
	return c.counter
}

// apply appends the keystream-XORed src to dst and returns the result.
func (c *Cipher) apply(dst, src []byte) []byte {
	ret, out := mem.SliceForAppend(dst, len(src))
	c.XORKeyStream(out, src)
	return ret
}

// incCounter increments the big-endian counter by one, wrapping modulo 2^128.
func (c *Cipher) incCounter() {
	for i := len(c.counter) - 1; i >= 0; i-- {
		c.counter[i]++
		if c.counter[i] != 0 {
			return
		}
	}
}

var _ cipher.Stream = (*Cipher)(nil)
