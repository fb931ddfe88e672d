package structs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arbpoly/arbpoly/utils/buffer"
)

// MaxVectorLen is the maximum number of components accepted by Vector.ReadFrom.
const MaxVectorLen = 1 << 24

// Vector is a slice of components serialized as their number followed by
// each component in order.
type Vector[T any, PT Encodable[T]] []T

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T, PT]) BinarySize() (size int) {
	size = 8
	for i := range v {
		size += PT(&v[i]).BinarySize()
	}
	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer. When writing to a pre-allocated
// []byte, pass buffer.NewBuffer(b) as w.
func (v Vector[T, PT]) WriteTo(w io.Writer) (n int64, err error) {

	bw, ok := w.(buffer.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}

	if n, err = buffer.WriteInt(bw, len(v)); err != nil {
		return n, fmt.Errorf("cannot WriteTo: length: %w", err)
	}

	var inc int64
	for i := range v {
		inc, err = PT(&v[i]).WriteTo(bw)
		n += inc
		if err != nil {
			return n, fmt.Errorf("cannot WriteTo: component %d: %w", i, err)
		}
	}

	return n, bw.Flush()
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The backing array of v is reused when large enough.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (v *Vector[T, PT]) ReadFrom(r io.Reader) (n int64, err error) {

	br, ok := r.(buffer.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var size int
	if n, err = buffer.ReadInt(br, &size); err != nil {
		return n, fmt.Errorf("cannot ReadFrom: length: %w", err)
	}

	if size < 0 || size > MaxVectorLen {
		return n, fmt.Errorf("cannot ReadFrom: invalid vector length %d", size)
	}

	if cap(*v) < size {
		*v = make([]T, size)
	}

	*v = (*v)[:size]

	var inc int64
	for i := range *v {
		inc, err = PT(&(*v)[i]).ReadFrom(br)
		n += inc
		if err != nil {
			return n, fmt.Errorf("cannot ReadFrom: component %d: %w", i, err)
		}
	}

	return
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T, PT]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T, PT]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}
