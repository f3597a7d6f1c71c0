// Command ctr_crypt encrypts or decrypts a file with Chaskey-LTS in CTR mode.
//
// The 16-byte key is derived from a passphrase with Argon2id. Encrypted files
// begin with the random 16-byte KDF salt and the random 16-byte nonce,
// followed by the ciphertext. The output is not authenticated; anyone able to
// modify it can make undetected changes to the plaintext.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/chaskey"
	"golang.org/x/crypto/argon2"
)

const headerSize = saltSize + chaskey.NonceSize

const saltSize = 16

func main() {
	log := slog.New(slog.Default().Handler())

	decrypt := flag.Bool("d", false, "decrypt instead of encrypt")
	passphrase := flag.String("passphrase", "", "the passphrase to derive the key from")
	flag.Parse()

	if flag.NArg() != 2 || *passphrase == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -passphrase <passphrase> [-d] <input> <output>\n", os.Args[0])
		os.Exit(2)
	}
	in, out := flag.Arg(0), flag.Arg(1)

	data, err := os.ReadFile(in)
	if err != nil {
		log.Error("failed to read input", "path", in, "err", err)
		os.Exit(1)
	}

	var output []byte
	if *decrypt {
		output, err = decryptFile(*passphrase, data)
	} else {
		output, err = encryptFile(*passphrase, data)
	}
	if err != nil {
		log.Error("operation failed", "err", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, output, 0o600); err != nil {
		log.Error("failed to write output", "path", out, "err", err)
		os.Exit(1)
	}
	log.Info("done", "in", in, "out", out, "bytes", len(output))
}

func encryptFile(passphrase string, plaintext []byte) ([]byte, error) {
	header := make([]byte, headerSize)
	if _, err := rand.Read(header); err != nil {
		return nil, err
	}
	salt, nonce := header[:saltSize], header[saltSize:]

	c, err := chaskey.NewCTR(deriveKey(passphrase, salt), nonce)
	if err != nil {
		return nil, err
	}
	ciphertext, err := c.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}
	return append(header, ciphertext...), nil
}

func decryptFile(passphrase string, data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("input too short: %d bytes", len(data))
	}
	salt, nonce := data[:saltSize], data[saltSize:headerSize]

	c, err := chaskey.NewCTR(deriveKey(passphrase, salt), nonce)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(data[headerSize:])
}

func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, chaskey.KeySize)
}
