// Package lts implements the Chaskey-LTS permutation: an Even-Mansour block
// cipher which XORs a 128-bit key into the state before and after 16
// add-rotate-xor rounds over four 32-bit words.
package lts

import (
	"encoding/binary"
	"math/bits"
)

// BlockSize is the size of a Chaskey-LTS block, in bytes.
const BlockSize = 16

// KeySize is the size of a Chaskey-LTS key, in bytes.
const KeySize = 16

// KeySchedule unpacks a key into four little-endian 32-bit words.
func KeySchedule(key *[KeySize]byte) (k [4]uint32) {
	k[0] = binary.LittleEndian.Uint32(key[0:4])
	k[1] = binary.LittleEndian.Uint32(key[4:8])
	k[2] = binary.LittleEndian.Uint32(key[8:12])
	k[3] = binary.LittleEndian.Uint32(key[12:16])
	return k
}

// Forward applies the forward permutation to block in place under the
// scheduled key k.
func Forward(block *[BlockSize]byte, k *[4]uint32) {
	v0 := binary.LittleEndian.Uint32(block[0:4]) ^ k[0]
	v1 := binary.LittleEndian.Uint32(block[4:8]) ^ k[1]
	v2 := binary.LittleEndian.Uint32(block[8:12]) ^ k[2]
	v3 := binary.LittleEndian.Uint32(block[12:16]) ^ k[3]

	for i := 0; i < 16; i++ {
		v0 += v1
		v1 = bits.RotateLeft32(v1, 5)
		v1 ^= v0
		v0 = bits.RotateLeft32(v0, 16)

		v2 += v3
		v3 = bits.RotateLeft32(v3, 8)
		v3 ^= v2

		v0 += v3
		v3 = bits.RotateLeft32(v3, 13)
		v3 ^= v0

		v2 += v1
		v1 = bits.RotateLeft32(v1, 7)
		v1 ^= v2
		v2 = bits.RotateLeft32(v2, 16)
	}

	binary.LittleEndian.PutUint32(block[0:4], v0^k[0])
	binary.LittleEndian.PutUint32(block[4:8], v1^k[1])
	binary.LittleEndian.PutUint32(block[8:12], v2^k[2])
	binary.LittleEndian.PutUint32(block[12:16], v3^k[3])
}

// Inverse applies the inverse permutation to block in place under the
// scheduled key k, undoing Forward: each round's steps are inverted and
// applied in reverse order.
func Inverse(block *[BlockSize]byte, k *[4]uint32) {
	v0 := binary.LittleEndian.Uint32(block[0:4]) ^ k[0]
	v1 := binary.LittleEndian.Uint32(block[4:8]) ^ k[1]
	v2 := binary.LittleEndian.Uint32(block[8:12]) ^ k[2]
	v3 := binary.LittleEndian.Uint32(block[12:16]) ^ k[3]

	for i := 0; i < 16; i++ {
		v2 = bits.RotateLeft32(v2, -16)
		v1 ^= v2
		v1 = bits.RotateLeft32(v1, -7)
		v2 -= v1

		v3 ^= v0
		v3 = bits.RotateLeft32(v3, -13)
		v0 -= v3

		v3 ^= v2
		v3 = bits.RotateLeft32(v3, -8)
		v2 -= v3

		v0 = bits.RotateLeft32(v0, -16)
		v1 ^= v0
		v1 = bits.RotateLeft32(v1, -5)
		v0 -= v1
	}

	binary.LittleEndian.PutUint32(block[0:4], v0^k[0])
	binary.LittleEndian.PutUint32(block[4:8], v1^k[1])
	binary.LittleEndian.PutUint32(block[8:12], v2^k[2])
	binary.LittleEndian.PutUint32(block[12:16], v3^k[3])
}
