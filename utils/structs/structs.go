// Package structs implements helpers to generalize vectors of structs, as well as their serialization.
package structs

import (
	"io"
)

// BinarySizer is implemented by types that know their serialized size.
type BinarySizer interface {
	BinarySize() int
}

// Encodable constrains PT to be the pointer type of T and to be able to
// serialize itself with the methods of the buffer package.
type Encodable[T any] interface {
	*T
	BinarySizer
	io.WriterTo
	io.ReaderFrom
}
