package xing

import "github.com/simonhull/lametag/internal/types"

// Cursor is a sequential big-endian reader over the bytes of one frame.
// *binary.Cursor implements it.
type Cursor interface {
	ReadUint8() uint8
	ReadUint16() uint16
	ReadUint24() uint32
	ReadUint32() uint32
	ReadFloat32() float32
	Skip(n int)
	Remaining() int
}

// Flag bits of the Xing flag word.
const (
	FlagFrameCount = 0x01
	FlagDataSize   = 0x02
	FlagTOC        = 0x04
	FlagQuality    = 0x08
)

const (
	qualitySize = 4

	// LAME version string (9), revision and VBR method (1), lowpass (1).
	lameSkipBeforeReplayGain = 9 + 1 + 1
	// Peak (4) and two gain fields (2 each).
	replayGainSize = 4 + 2 + 2
	// Encoding flags and ATH type (1), bitrate (1).
	lameSkipBeforeTrim = 1 + 1
	// 12-bit delay followed by 12-bit padding.
	encoderTrimSize = 3
)

// Parse decodes a Xing/Info frame. c must be positioned immediately after
// the "Xing" or "Info" marker and must have at least 4 bytes remaining for
// the flag word; callers are expected to check this.
//
// Sections named by the flag word are read unconditionally. The LAME
// extension is decoded only when enough bytes remain for it, and any part
// that does not fit is left absent rather than reported as an error. The
// position of c after Parse returns is unspecified.
//
// header is copied into the returned frame.
func Parse(header types.Header, c Cursor) *Frame {
	f := &Frame{header: header}

	flags := c.ReadUint32()

	if flags&FlagFrameCount != 0 {
		f.frameCount = c.ReadUint32()
		f.hasFrameCount = true
	}

	if flags&FlagDataSize != 0 {
		f.dataSize = c.ReadUint32()
		f.hasDataSize = true
	}

	if flags&FlagTOC != 0 {
		for i := range f.toc {
			f.toc[i] = c.ReadUint8()
		}
		f.hasTOC = true
	}

	if flags&FlagQuality != 0 {
		c.Skip(qualitySize)
	}

	if c.Remaining() < lameSkipBeforeReplayGain+replayGainSize {
		return f
	}
	c.Skip(lameSkipBeforeReplayGain)

	f.replayGain = types.ReplayGain{
		Peak:   c.ReadFloat32(),
		Field1: DecodeGainField(c.ReadUint16()),
		Field2: DecodeGainField(c.ReadUint16()),
	}
	f.hasReplayGain = true

	if c.Remaining() < lameSkipBeforeTrim+encoderTrimSize {
		return f
	}
	c.Skip(lameSkipBeforeTrim)

	trim := c.ReadUint24()
	f.encoderDelay = uint16(trim >> 12)
	f.encoderPadding = uint16(trim & 0xFFF)
	f.hasEncoderTrim = true

	return f
}
