package binary

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Cursor reads big-endian values sequentially from an in-memory buffer.
//
// Reads never go past the end of the buffer. A read that would overrun
// returns the zero value, leaves the cursor at the end of the buffer, and
// records an error. Once an error is recorded all further reads return zero,
// so a sequence of reads can be checked once with Err.
type Cursor struct {
	buf []byte
	pos int
	err error
}

// NewCursor returns a Cursor positioned at the start of buf.
// The cursor does not copy buf; callers must not modify it while reading.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Err returns the first overrun encountered, if any.
func (c *Cursor) Err() error {
	return c.err
}

// next returns the next n bytes and advances, or nil on overrun.
func (c *Cursor) next(n int, what string) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > c.Remaining() {
		c.err = fmt.Errorf("read of %d bytes at offset %d exceeds buffer size %d while reading %s",
			n, c.pos, len(c.buf), what)
		c.pos = len(c.buf)
		return nil
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b
}

// ReadUint8 reads one unsigned byte.
func (c *Cursor) ReadUint8() uint8 {
	b := c.next(1, "uint8")
	if b == nil {
		return 0
	}
	return b[0]
}

// ReadUint16 reads a big-endian uint16.
func (c *Cursor) ReadUint16() uint16 {
	b := c.next(2, "uint16")
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// ReadUint24 reads a big-endian 24-bit unsigned value.
func (c *Cursor) ReadUint24() uint32 {
	b := c.next(3, "uint24")
	if b == nil {
		return 0
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// ReadUint32 reads a big-endian uint32.
func (c *Cursor) ReadUint32() uint32 {
	b := c.next(4, "uint32")
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// ReadFloat32 reads a big-endian IEEE-754 single precision float.
func (c *Cursor) ReadFloat32() float32 {
	return math.Float32frombits(c.ReadUint32())
}

// Skip advances n bytes.
func (c *Cursor) Skip(n int) {
	c.next(n, "skipped bytes")
}
