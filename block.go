package chaskey

import (
	"crypto/cipher"

	"github.com/codahale/chaskey/internal/lts"
)

// NewBlock returns a cipher.Block exposing the raw Chaskey-LTS permutation:
// Encrypt applies the forward permutation and Decrypt its inverse, so
// Decrypt(Encrypt(b)) == b for every block b under a fixed key.
//
// N.B.: a raw permutation is not a secure encryption scheme for bulk data; use
// a Cipher (or wrap the returned Block in a mode) instead.
func NewBlock(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidLength
	}
	return &block{k: lts.KeySchedule((*[KeySize]byte)(key))}, nil
}

type block struct {
	k [4]uint32
}

func (b *block) BlockSize() int {
	return lts.BlockSize
}

func (b *block) Encrypt(dst, src []byte) {
	if len(src) < lts.BlockSize {
		panic("chaskey: input not full block")
	}
	if len(dst) < lts.BlockSize {
		panic("chaskey: output not full block")
	}

	buf := [lts.BlockSize]byte(src)
	lts.Forward(&buf, &b.k)
	copy(dst, buf[:])
}

func (b *block) Decrypt(dst, src []byte) {
	if len(src) < lts.BlockSize {
		panic("chaskey: input not full block")
	}
	if len(dst) < lts.BlockSize {
		panic("chaskey: output not full block")
	}

	buf := [lts.BlockSize]byte(src)
	lts.Inverse(&buf, &b.k)
	copy(dst, buf[:])
}

var _ cipher.Block = (*block)(nil)
