// Package mpeg locates and decodes MPEG audio frame headers.
package mpeg

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/simonhull/lametag/internal/types"
)

// HeaderSize is the size of an MPEG audio frame header.
const HeaderSize = 4

var (
	errNoSync        = errors.New("invalid frame sync")
	errBadVersion    = errors.New("reserved MPEG version")
	errBadLayer      = errors.New("reserved layer")
	errBadBitrate    = errors.New("free-format or invalid bitrate index")
	errBadSampleRate = errors.New("reserved sample rate index")
)

// Bitrates in kbps, indexed by bitrate index. Index 0 (free format) and 15
// (bad) are rejected before lookup.
var (
	bitratesV1L1 = [16]int{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0}
	bitratesV1L2 = [16]int{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0}
	bitratesV1L3 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}
	bitratesV2L1 = [16]int{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0}
	// MPEG-2 and 2.5 share the Layer II and III table.
	bitratesV2L23 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0}
)

// Sample rates in Hz, indexed by sample rate index.
var sampleRates = map[types.Version][3]int{
	types.MPEG1:  {44100, 48000, 32000},
	types.MPEG2:  {22050, 24000, 16000},
	types.MPEG25: {11025, 12000, 8000},
}

// Decode decodes a 32-bit big-endian frame header.
func Decode(header uint32) (types.Header, error) {
	var h types.Header

	// Frame sync: 11 bits set
	if header&0xFFE00000 != 0xFFE00000 {
		return h, errNoSync
	}

	switch (header >> 19) & 0x3 {
	case 0:
		h.Version = types.MPEG25
	case 2:
		h.Version = types.MPEG2
	case 3:
		h.Version = types.MPEG1
	default:
		return h, errBadVersion
	}

	layerBits := (header >> 17) & 0x3
	if layerBits == 0 {
		return h, errBadLayer
	}
	h.Layer = types.Layer(4 - layerBits)

	h.Protected = (header>>16)&0x1 == 0

	bitrateIdx := (header >> 12) & 0xF
	if bitrateIdx == 0 || bitrateIdx == 0xF {
		return h, errBadBitrate
	}
	h.Bitrate = bitrateTable(h.Version, h.Layer)[bitrateIdx] * 1000

	sampleRateIdx := (header >> 10) & 0x3
	if sampleRateIdx == 3 {
		return h, errBadSampleRate
	}
	h.SampleRate = sampleRates[h.Version][sampleRateIdx]

	h.Padding = (header>>9)&0x1 == 1

	h.ChannelMode = types.ChannelMode((header >> 6) & 0x3)
	if h.ChannelMode == types.ChannelModeMono {
		h.Channels = 1
	} else {
		h.Channels = 2
	}

	h.SamplesPerFrame = samplesPerFrame(h.Version, h.Layer)
	h.FrameSize = frameSize(h)

	return h, nil
}

// DecodeBytes decodes the header in the first four bytes of b.
func DecodeBytes(b []byte) (types.Header, error) {
	if len(b) < HeaderSize {
		return types.Header{}, fmt.Errorf("need %d header bytes, got %d", HeaderSize, len(b))
	}
	return Decode(binary.BigEndian.Uint32(b))
}

func bitrateTable(v types.Version, l types.Layer) *[16]int {
	if v == types.MPEG1 {
		switch l {
		case types.Layer1:
			return &bitratesV1L1
		case types.Layer2:
			return &bitratesV1L2
		default:
			return &bitratesV1L3
		}
	}
	if l == types.Layer1 {
		return &bitratesV2L1
	}
	return &bitratesV2L23
}

func samplesPerFrame(v types.Version, l types.Layer) int {
	switch {
	case l == types.Layer1:
		return 384
	case l == types.Layer3 && v != types.MPEG1:
		return 576
	default:
		return 1152
	}
}

// frameSize returns the frame length in bytes, header included.
func frameSize(h types.Header) int {
	padding := 0
	if h.Padding {
		padding = 1
	}

	if h.Layer == types.Layer1 {
		return (12*h.Bitrate/h.SampleRate + padding) * 4
	}

	// bytes = samples/8 * bitrate / sampleRate
	return (h.SamplesPerFrame/8)*h.Bitrate/h.SampleRate + padding
}

// SideInfoSize returns the Layer III side information size that sits
// between the header and the Xing/Info marker.
func SideInfoSize(h types.Header) int {
	mono := h.ChannelMode == types.ChannelModeMono
	if h.Version == types.MPEG1 {
		if mono {
			return 17
		}
		return 32
	}
	if mono {
		return 9
	}
	return 17
}

// XingOffset returns the offset of the Xing/Info marker from the start of
// the frame.
func XingOffset(h types.Header) int {
	return HeaderSize + SideInfoSize(h)
}
