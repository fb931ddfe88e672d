package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// SecurePRNG reads from crypto/rand. It is safe for concurrent use.
type SecurePRNG struct{}

// NewPRNG returns a SecurePRNG.
func NewPRNG() (*SecurePRNG, error) {
	return &SecurePRNG{}, nil
}

// Read fills p with bytes from crypto/rand.
func (SecurePRNG) Read(p []byte) (n int, err error) {
	return rand.Read(p)
}

// KeyedPRNG is a reproducible source of random bytes: the output stream of
// the blake2b XOF keyed with the given key. Reads are serialized, and the
// stream is reproducible as long as a single goroutine reads from it.
type KeyedPRNG struct {
	mu  sync.Mutex
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG returns a KeyedPRNG keyed with a copy of key.
// A nil key is the empty key. The key must be at most 64 bytes long.
func NewKeyedPRNG(key []byte) (prng *KeyedPRNG, err error) {

	prng = &KeyedPRNG{key: append([]byte{}, key...)}

	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, prng.key); err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}

	return
}

// Key returns a copy of the key of prng. A KeyedPRNG created with this
// key reads the same stream.
func (prng *KeyedPRNG) Key() []byte {
	return append([]byte{}, prng.key...)
}

// Read fills p with the next bytes of the stream.
func (prng *KeyedPRNG) Read(p []byte) (n int, err error) {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	return prng.xof.Read(p)
}

// Reset rewinds the stream to its first byte.
func (prng *KeyedPRNG) Reset() {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	prng.xof.Reset()
}
