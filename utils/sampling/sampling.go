// Package sampling implements deterministic and secure sampling of bytes and integers.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// KeySize is the size in bytes of the keys returned by DeriveKey.
const KeySize = 32

// DeriveKey hashes a label into a KeySize bytes key for NewKeyedPRNG.
// The same label always yields the same key.
func DeriveKey(label string) []byte {
	hasher := blake3.New()
	if _, err := hasher.Write([]byte(label)); err != nil {
		// sanity check, this error should not happen
		panic(err)
	}
	return hasher.Sum(nil)[:KeySize]
}

// NewKeyedPRNGFromLabel returns a KeyedPRNG keyed with DeriveKey(label).
func NewKeyedPRNGFromLabel(label string) *KeyedPRNG {
	prng, err := NewKeyedPRNG(DeriveKey(label))
	if err != nil {
		// sanity check, this error should not happen
		panic(err)
	}
	return prng
}

// RandUint64 returns a uniform value in [0, 2^64) read from prng.
func RandUint64(prng io.Reader) uint64 {
	var b [8]byte
	if _, err := io.ReadFull(prng, b[:]); err != nil {
		panic(fmt.Errorf("cannot RandUint64: %w", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// RandIntn returns a uniform value in [0, n) read from prng.
// n must be strictly positive.
func RandIntn(prng io.Reader, n int) int {

	if n <= 0 {
		panic(fmt.Errorf("cannot RandIntn: n must be strictly positive but is %d", n))
	}

	bound := uint64(n)

	// rejection sampling over the largest multiple of n below 2^64
	limit := ^uint64(0) - (^uint64(0) % bound)

	for {
		if v := RandUint64(prng); v < limit {
			return int(v % bound)
		}
	}
}
