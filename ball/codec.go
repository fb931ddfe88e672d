package ball

import (
	"bufio"
	"fmt"
	"io"
	"math/big"

	"github.com/arbpoly/arbpoly/utils/buffer"
)

// MaxEncodedFloatBytes is the maximum size of an encoded midpoint or radius
// accepted by ReadFrom.
const MaxEncodedFloatBytes = 1 << 26

// BinarySize returns the serialized size of the object in bytes.
func (x *Ball) BinarySize() (size int) {
	mb, rb, err := x.encode()
	if err != nil {
		// sanity check, this error should not happen
		panic(err)
	}
	return 16 + len(mb) + len(rb)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (x *Ball) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var mb, rb []byte
		if mb, rb, err = x.encode(); err != nil {
			return
		}

		var inc int64
		if inc, err = buffer.WriteBytes(w, mb); err != nil {
			return n + inc, fmt.Errorf("cannot write midpoint: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteBytes(w, rb); err != nil {
			return n + inc, fmt.Errorf("cannot write radius: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return x.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (x *Ball) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var mb, rb []byte
		var inc int64

		if mb, inc, err = buffer.ReadBytes(r, MaxEncodedFloatBytes); err != nil {
			return n + inc, fmt.Errorf("cannot read midpoint: %w", err)
		}

		n += inc

		if rb, inc, err = buffer.ReadBytes(r, MaxEncodedFloatBytes); err != nil {
			return n + inc, fmt.Errorf("cannot read radius: %w", err)
		}

		n += inc

		mid, rad := new(big.Float), new(big.Float)

		if err = mid.GobDecode(mb); err != nil {
			return n, fmt.Errorf("cannot decode midpoint: %w", err)
		}

		if err = rad.GobDecode(rb); err != nil {
			return n, fmt.Errorf("cannot decode radius: %w", err)
		}

		if mid.IsInf() {
			return n, fmt.Errorf("cannot ReadFrom: midpoint is infinite")
		}

		if rad.Sign() < 0 {
			return n, fmt.Errorf("cannot ReadFrom: radius is negative")
		}

		x.mid = mid

		switch {
		case rad.IsInf():
			x.rad = posInf
		case rad.Sign() == 0:
			x.rad = nil
		default:
			x.rad = newRad().Set(rad)
		}

		return n, nil

	default:
		return x.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (x *Ball) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(x.BinarySize())
	_, err = x.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (x *Ball) UnmarshalBinary(p []byte) (err error) {
	_, err = x.ReadFrom(buffer.NewBuffer(p))
	return
}

func (x *Ball) encode() (mb, rb []byte, err error) {

	if mb, err = x.m().GobEncode(); err != nil {
		return nil, nil, fmt.Errorf("cannot encode midpoint: %w", err)
	}

	if rb, err = x.r().GobEncode(); err != nil {
		return nil, nil, fmt.Errorf("cannot encode radius: %w", err)
	}

	return
}
