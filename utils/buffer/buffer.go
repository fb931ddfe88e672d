// Package buffer implements methods for writing and reading length-prefixed
// values to and from io.Writer and io.Reader that also expose their internal buffers.
package buffer

import (
	"errors"
	"fmt"
	"io"
)

// Writer is an io.Writer exposing its unused buffer space, so that fixed-size
// values can be encoded in place. bufio.Writer and Buffer implement it.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is an io.Reader that can also read and unread single bytes.
// bufio.Reader and Buffer implement it.
type Reader interface {
	io.Reader
	io.ByteScanner
}

// Buffer is a fixed-capacity byte buffer implementing both Writer and Reader.
// Writes append after the last written byte and fail once the capacity is
// reached. Reads consume from the start of the buffer up to its full length.
type Buffer struct {
	data []byte
	wpos int
	rpos int
}

// NewBuffer returns a Buffer backed by data. Its read offset and write offset
// both start at data[0]: the content of data can be read, or overwritten.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBufferSize returns a Buffer backed by a new slice of size bytes.
func NewBufferSize(size int) *Buffer {
	return NewBuffer(make([]byte, size))
}

// Write copies p at the write offset of b.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if avail := b.Available(); len(p) > avail {
		return 0, fmt.Errorf("cannot Write: buffer too small (available=%d, len(p)=%d)", avail, len(p))
	}
	n = copy(b.data[b.wpos:], p)
	b.wpos += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.data) - b.wpos
}

// AvailableBuffer returns a zero-length slice over the unwritten part of b,
// to be appended to and passed to Write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.data[b.wpos:b.wpos]
}

// Bytes returns the whole backing slice of b.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return len(b.data) - b.rpos
}

// Reset moves the read and write offsets of b back to the start.
func (b *Buffer) Reset() {
	b.wpos, b.rpos = 0, 0
}

// Read copies the unread bytes of b into p. It returns io.EOF if fewer
// than len(p) bytes were left.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.data[b.rpos:])
	b.rpos += n
	if n < len(p) {
		err = io.EOF
	}
	return
}

// ReadByte reads the next unread byte of b.
func (b *Buffer) ReadByte() (c byte, err error) {
	if b.rpos == len(b.data) {
		return 0, io.EOF
	}
	c = b.data[b.rpos]
	b.rpos++
	return
}

// UnreadByte steps the read offset of b one byte back.
func (b *Buffer) UnreadByte() error {
	if b.rpos == 0 {
		return errors.New("cannot UnreadByte: at beginning of buffer")
	}
	b.rpos--
	return nil
}
