// Package chaskey implements the Chaskey-LTS block cipher and a counter-mode
// (CTR) stream construction on top of it.
//
// Chaskey-LTS is the long-term-security variant of [Chaskey], with the round
// count raised from 8 to 16. The permutation is an Even-Mansour design: the
// 128-bit key is XORed into the state before and after 16 add-rotate-xor
// rounds over four little-endian 32-bit words. CTR mode encrypts a 16-byte
// big-endian counter with the permutation to produce keystream, XORs the
// keystream with the data, and advances the counter once per block; the same
// operation encrypts and decrypts.
//
// Chaskey was designed as a MAC for 32-bit microcontrollers; this package uses
// its permutation as an unauthenticated cipher. Ciphertexts are malleable, and
// a (key, nonce) pair must never be reused across messages.
//
// [Chaskey]: https://eprint.iacr.org/2014/386.pdf
package chaskey

import (
	"errors"
	"strings"

	"github.com/codahale/chaskey/internal/lts"
)

const (
	// KeySize is the size of a Chaskey-LTS key, in bytes.
	KeySize = lts.KeySize

	// BlockSize is the size of a Chaskey-LTS block, in bytes.
	BlockSize = lts.BlockSize

	// NonceSize is the size of a CTR-mode nonce, in bytes. The nonce is the
	// initial value of the 128-bit big-endian block counter.
	NonceSize = lts.BlockSize
)

var (
	// ErrUnsupportedMode is returned when a cipher mode other than CTR is
	// requested by name.
	ErrUnsupportedMode = errors.New("chaskey: unsupported cipher mode")

	// ErrMissingNonce is returned when CTR mode is requested without a nonce.
	ErrMissingNonce = errors.New("chaskey: ctr mode requires a nonce")

	// ErrInvalidLength is returned when a key or nonce is not exactly 16 bytes.
	ErrInvalidLength = errors.New("chaskey: keys and nonces must be exactly 16 bytes")

	// ErrMissingCounterState is returned when Encrypt or Decrypt is called on a
	// zero-value Cipher, which has no counter to generate keystream from.
	ErrMissingCounterState = errors.New("chaskey: cipher has no counter state")
)

// A Mode identifies a cipher mode of operation. The zero value is not a valid
// mode.
type Mode int

// ModeCTR is counter mode, the only implemented mode. ECB, CBC, OFB, CFB,
// CFB8, and GCM are not implemented and are rejected at construction.
const ModeCTR Mode = 1

// A Cipher encrypts and decrypts data with Chaskey-LTS in the mode it was
// constructed for.
//
// A Cipher owns its block counter and advances it in place, so successive
// calls on one instance continue the keystream rather than restarting it.
// Cipher instances are not concurrent-safe.
type Cipher struct {
	mode    Mode
	k       [4]uint32
	counter [NonceSize]byte
}

// New returns a Cipher for the named mode. The only supported name is "ctr"
// (case-insensitive), which requires a 16-byte nonce; all other names fail
// with ErrUnsupportedMode before any cryptographic state is created.
func New(mode string, key []byte, nonce ...[]byte) (*Cipher, error) {
	if !strings.EqualFold(mode, "ctr") {
		return nil, ErrUnsupportedMode
	}
	if len(nonce) == 0 {
		return nil, ErrMissingNonce
	}
	return NewCTR(key, nonce[0])
}

// NewCTR returns a Cipher in CTR mode. The key and nonce must both be exactly
// 16 bytes; the nonce becomes the initial counter value and must not be reused
// with the same key for another message.
func NewCTR(key, nonce []byte) (*Cipher, error) {
	if len(key) != KeySize || len(nonce) != NonceSize {
		return nil, ErrInvalidLength
	}

	c := &Cipher{mode: ModeCTR, k: lts.KeySchedule((*[KeySize]byte)(key))}
	copy(c.counter[:], nonce)
	return c, nil
}

// Encrypt encrypts data, returning a ciphertext of exactly the same length and
// advancing the counter by one per block consumed, including a trailing
// partial block.
func (c *Cipher) Encrypt(data []byte) ([]byte, error) {
	if c.mode != ModeCTR {
		return nil, ErrMissingCounterState
	}
	return c.apply(nil, data), nil
}

// Decrypt decrypts data. CTR mode is self-inverse, so this is the same
// operation as Encrypt: decrypting a ciphertext requires a Cipher whose
// counter matches the value the ciphertext was encrypted at.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	if c.mode != ModeCTR {
		return nil, ErrMissingCounterState
	}
	return c.apply(nil, data), nil
}
