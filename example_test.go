package chaskey_test

import (
	"crypto/cipher"
	"fmt"
	"io"
	"strings"

	"github.com/codahale/chaskey"
)

func ExampleNewCTR() {
	key := []byte("0123456789012345")
	nonce := []byte("0000000000000000")

	enc, _ := chaskey.NewCTR(key, nonce)
	ciphertext, _ := enc.Encrypt([]byte("foo"))
	fmt.Printf("%x\n", ciphertext)

	// Decryption is the same keystream, so it needs a cipher starting at the
	// same counter value.
	dec, _ := chaskey.NewCTR(key, nonce)
	plaintext, _ := dec.Decrypt(ciphertext)
	fmt.Println(string(plaintext))

	// Output:
	// 2bdad6
	// foo
}

func ExampleCipher_XORKeyStream() {
	key := []byte("0123456789012345")
	nonce := []byte("0000000000000000")

	// A Cipher is a cipher.Stream, so the standard library's stream wrappers
	// compose with it.
	c, _ := chaskey.NewCTR(key, nonce)
	r := cipher.StreamReader{S: c, R: strings.NewReader("a stream of plaintext")}
	ciphertext, _ := io.ReadAll(r)

	d, _ := chaskey.NewCTR(key, nonce)
	plaintext := make([]byte, len(ciphertext))
	d.XORKeyStream(plaintext, ciphertext)
	fmt.Println(string(plaintext))

	// Output:
	// a stream of plaintext
}
