package poly

import (
	"io"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/utils/structs"
)

type coeffVector = structs.Vector[ball.Ball, *ball.Ball]

// BinarySize returns the serialized size of the object in bytes.
func (p *Poly) BinarySize() int {
	return coeffVector(p.coeffs).BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (p *Poly) WriteTo(w io.Writer) (n int64, err error) {
	return coeffVector(p.coeffs).WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
//
// p is left unchanged if an error is returned.
func (p *Poly) ReadFrom(r io.Reader) (n int64, err error) {
	var v coeffVector
	if n, err = v.ReadFrom(r); err != nil {
		return
	}
	p.coeffs = v
	p.normalize()
	return
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Poly) MarshalBinary() (data []byte, err error) {
	return coeffVector(p.coeffs).MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
// p is left unchanged if an error is returned.
func (p *Poly) UnmarshalBinary(data []byte) (err error) {
	var v coeffVector
	if err = v.UnmarshalBinary(data); err != nil {
		return
	}
	p.coeffs = v
	p.normalize()
	return
}
