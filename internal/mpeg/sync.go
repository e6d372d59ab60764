package mpeg

import (
	"fmt"

	binutil "github.com/simonhull/lametag/internal/binary"
	"github.com/simonhull/lametag/internal/types"
)

// Frame is a located MPEG audio frame.
type Frame struct {
	Header types.Header
	Offset int64  // offset of the frame header in the stream
	Data   []byte // frame bytes, header included; short if the stream ends early
}

// Truncated reports whether the stream ended before the end of the frame.
func (f Frame) Truncated() bool {
	return len(f.Data) < f.Header.FrameSize
}

// scanChunkSize is how much of the stream FindFrame holds in memory at once.
const scanChunkSize = 4096

// FindFrame scans sr from start for the first MPEG audio frame, looking at
// no more than maxScan bytes (the rest of the stream if maxScan <= 0). A
// candidate header is accepted when the header that should follow it also
// decodes with the same version, layer and sample rate, or when the
// following header would lie outside the scanned window.
func FindFrame(sr *binutil.SafeReader, start, maxScan int64) (Frame, error) {
	if start >= sr.Size() {
		return Frame{}, fmt.Errorf("%w: offset %d is past end of stream", types.ErrNoFrameSync, start)
	}

	end := sr.Size()
	if maxScan > 0 && maxScan < end-start {
		end = start + maxScan
	}

	// Consecutive chunks overlap by HeaderSize-1 bytes so a header that
	// straddles a chunk boundary is still seen whole.
	chunk := make([]byte, scanChunkSize+HeaderSize-1)
	for pos := start; pos+HeaderSize <= end; pos += scanChunkSize {
		n, err := sr.ReadUpTo(chunk[:min(int64(len(chunk)), end-pos)], pos, "frame sync window")
		if err != nil {
			return Frame{}, err
		}
		buf := chunk[:n]

		for i := 0; i < scanChunkSize && i+HeaderSize <= len(buf); i++ {
			if buf[i] != 0xFF {
				continue
			}

			h, err := DecodeBytes(buf[i:])
			if err != nil {
				continue
			}

			offset := pos + int64(i)
			if !followedByMatchingHeader(sr, offset, end, h) {
				continue
			}

			data := make([]byte, h.FrameSize)
			read, err := sr.ReadUpTo(data, offset, "first frame")
			if err != nil {
				return Frame{}, err
			}

			return Frame{Header: h, Offset: offset, Data: data[:read]}, nil
		}
	}

	return Frame{}, fmt.Errorf("%w within %d bytes of offset %d", types.ErrNoFrameSync, end-start, start)
}

func followedByMatchingHeader(sr *binutil.SafeReader, offset, end int64, h types.Header) bool {
	next := offset + int64(h.FrameSize)
	if next+HeaderSize > end {
		return true
	}

	word, err := binutil.Read[uint32](sr, next, "next frame header")
	if err != nil {
		return false
	}

	nh, err := Decode(word)
	if err != nil {
		return false
	}
	return nh.Version == h.Version && nh.Layer == h.Layer && nh.SampleRate == h.SampleRate
}
