// Package binary provides bounds-checked binary reading primitives.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/simonhull/lametag/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return sr.outOfBounds(off, len(b), what)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// ReadUpTo reads at most len(b) bytes at off, stopping at the end of the
// reader. It returns the number of bytes read.
func (sr *SafeReader) ReadUpTo(b []byte, off int64, what string) (int, error) {
	if off < 0 || off >= sr.size {
		return 0, sr.outOfBounds(off, len(b), what)
	}

	if avail := sr.size - off; int64(len(b)) > avail {
		b = b[:avail]
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}
	return n, nil
}

func (sr *SafeReader) outOfBounds(off int64, n int, what string) error {
	return &types.OutOfBoundsError{
		Path:   sr.path,
		What:   what,
		Offset: off,
		Length: n,
		Size:   sr.size,
	}
}

// Read reads a big-endian value of type T from the given offset.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	var zero T
	var size int

	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	buf := make([]byte, size)
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}
