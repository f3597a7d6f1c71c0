package lts //nolint:testpackage // testing internals

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"
	"time"
)

func TestForward(t *testing.T) {
	var key, block [16]byte
	copy(key[:], "0123456789012345")
	copy(block[:], "0000000000000000")

	k := KeySchedule(&key)
	Forward(&block, &k)

	// Derived from the Chaskey-LTS reference implementation.
	expectedHex := "4db5b9d5e396e2519b6d12a7d405ffba"
	gotHex := hex.EncodeToString(block[:])

	if gotHex != expectedHex {
		t.Errorf("Forward = %s, want %s", gotHex, expectedHex)
	}
}

func TestInverse(t *testing.T) {
	var key, block [16]byte
	copy(key[:], "0123456789012345")
	ct, _ := hex.DecodeString("4db5b9d5e396e2519b6d12a7d405ffba")
	copy(block[:], ct)

	k := KeySchedule(&key)
	Inverse(&block, &k)

	if got, want := string(block[:]), "0000000000000000"; got != want {
		t.Errorf("Inverse = %q, want %q", got, want)
	}
}

func TestInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var key, block, orig [16]byte

	for i := 0; i < 100; i++ {
		rng.Read(key[:])
		rng.Read(block[:])
		copy(orig[:], block[:])

		k := KeySchedule(&key)
		Forward(&block, &k)

		if bytes.Equal(block[:], orig[:]) {
			t.Errorf("iteration %d: Forward is the identity", i)
		}

		Inverse(&block, &k)

		if !bytes.Equal(block[:], orig[:]) {
			t.Errorf("iteration %d: Inverse(Forward(b)) = %x, want %x", i, block, orig)
		}
	}
}

func FuzzInvolution(f *testing.F) {
	f.Add([]byte("0123456789012345fedcba9876543210"))
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < KeySize+BlockSize {
			t.Skip()
		}

		var key, block [16]byte
		copy(key[:], data[:KeySize])
		copy(block[:], data[KeySize:KeySize+BlockSize])
		orig := block

		k := KeySchedule(&key)
		Forward(&block, &k)
		Inverse(&block, &k)

		if block != orig {
			t.Errorf("Inverse(Forward(b)) = %x, want %x", block, orig)
		}
	})
}

func BenchmarkForward(b *testing.B) {
	var key, block [16]byte
	k := KeySchedule(&key)
	b.SetBytes(int64(len(block)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Forward(&block, &k)
	}
}

func BenchmarkInverse(b *testing.B) {
	var key, block [16]byte
	k := KeySchedule(&key)
	b.SetBytes(int64(len(block)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Inverse(&block, &k)
	}
}
