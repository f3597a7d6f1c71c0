// Package mem provides memory helpers for the keystream path.
package mem

import "slices"

// XORBlock XORs src against up to one block of keystream into dst and returns
// the number of bytes processed: min(len(src), len(ks)). dst must be at least
// that long.
func XORBlock(dst, src []byte, ks *[16]byte) int {
	n := min(len(src), len(ks))
	for i := 0; i < n; i++ {
		dst[i] = src[i] ^ ks[i]
	}
	return n
}

// SliceForAppend takes a slice and a requested number of bytes. It returns a
// slice with the contents of the given slice followed by that many bytes and a
// second slice that aliases into it and contains only the extra bytes. If the
// original slice has sufficient capacity, then no allocation is performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
