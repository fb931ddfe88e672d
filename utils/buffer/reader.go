package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Read reads exactly len(c) bytes from r into c.
func Read(r Reader, c []byte) (n int64, err error) {
	nint, err := io.ReadFull(r, c)
	return int64(nint), err
}

// ReadUint8 reads a byte from r into c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb = [1]byte{}

	if n, err = Read(r, bb[:]); err != nil {
		return
	}

	*c = bb[0]

	return n, nil
}

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = Read(r, bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadInt reads an int written by WriteInt from r into c.
func ReadInt(r Reader, c *int) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadInt: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = int(u)

	return
}

// ReadBytes reads a slice of bytes written by WriteBytes from r.
// The slice is rejected if its length exceeds max.
func ReadBytes(r Reader, max int) (c []byte, n int64, err error) {

	var size int
	var inc int64
	if inc, err = ReadInt(r, &size); err != nil {
		return nil, inc, fmt.Errorf("cannot ReadBytes: %w", err)
	}

	n += inc

	if size < 0 || size > max {
		return nil, n, fmt.Errorf("cannot ReadBytes: invalid length %d (max=%d)", size, max)
	}

	c = make([]byte, size)

	if inc, err = Read(r, c); err != nil {
		return nil, n + inc, fmt.Errorf("cannot ReadBytes: %w", err)
	}

	return c, n + inc, nil
}
