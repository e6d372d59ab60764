package xing

import (
	"time"

	"github.com/simonhull/lametag/internal/types"
)

// TableOfContentsSize is the number of entries in a Xing seek table.
const TableOfContentsSize = 100

// Frame is a decoded Xing/Info frame. It is immutable once returned by
// Parse and safe to share between goroutines.
type Frame struct {
	header types.Header

	frameCount    uint32
	hasFrameCount bool

	dataSize    uint32
	hasDataSize bool

	toc    [TableOfContentsSize]uint8
	hasTOC bool

	replayGain    types.ReplayGain
	hasReplayGain bool

	encoderDelay   uint16
	encoderPadding uint16
	hasEncoderTrim bool
}

// Header returns the MPEG header of the frame that carried the tag.
func (f *Frame) Header() types.Header {
	return f.header
}

// FrameCount returns the number of audio frames in the stream.
func (f *Frame) FrameCount() (uint32, bool) {
	return f.frameCount, f.hasFrameCount
}

// DataSize returns the stream size in bytes, including this frame.
func (f *Frame) DataSize() (uint32, bool) {
	return f.dataSize, f.hasDataSize
}

// TableOfContents returns the seek table. Entry i is the byte position, in
// 1/256ths of DataSize, at which i percent of the duration is reached.
// Entries are returned as stored; they are not checked for monotonicity.
func (f *Frame) TableOfContents() ([TableOfContentsSize]uint8, bool) {
	return f.toc, f.hasTOC
}

// HasReplayGain reports whether the LAME extension was present.
func (f *Frame) HasReplayGain() bool {
	return f.hasReplayGain
}

// ReplayGain returns the ReplayGain block of the LAME extension.
func (f *Frame) ReplayGain() (types.ReplayGain, bool) {
	return f.replayGain, f.hasReplayGain
}

// ReplayGainMetadata returns the ReplayGain block as flat metadata. It
// reports false when the frame has no LAME extension; no empty placeholder
// is ever produced.
func (f *Frame) ReplayGainMetadata() (types.ReplayGainMetadata, bool) {
	if !f.hasReplayGain {
		return types.ReplayGainMetadata{}, false
	}
	return f.replayGain.Metadata(), true
}

// EncoderDelay returns the number of samples the encoder added at the start
// of the stream. It is present exactly when EncoderPadding is.
func (f *Frame) EncoderDelay() (int, bool) {
	return int(f.encoderDelay), f.hasEncoderTrim
}

// EncoderPadding returns the number of samples the encoder added at the end
// of the stream.
func (f *Frame) EncoderPadding() (int, bool) {
	return int(f.encoderPadding), f.hasEncoderTrim
}

// Duration is DurationUs as a time.Duration.
func (f *Frame) Duration() (time.Duration, bool) {
	us, ok := f.DurationUs()
	if !ok {
		return 0, false
	}
	return time.Duration(us) * time.Microsecond, true
}
