package types

import "fmt"

// Version is the MPEG audio version encoded in a frame header.
type Version uint8

const (
	// MPEG25 is the unofficial MPEG-2.5 extension for low sample rates.
	MPEG25 Version = iota
	// MPEG2 is MPEG-2 (ISO/IEC 13818-3) low sample rate audio.
	MPEG2
	// MPEG1 is MPEG-1 (ISO/IEC 11172-3) audio.
	MPEG1
)

func (v Version) String() string {
	switch v {
	case MPEG1:
		return "MPEG-1"
	case MPEG2:
		return "MPEG-2"
	case MPEG25:
		return "MPEG-2.5"
	default:
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
}

// Layer is the MPEG audio layer.
type Layer uint8

const (
	Layer1 Layer = 1
	Layer2 Layer = 2
	Layer3 Layer = 3
)

func (l Layer) String() string {
	switch l {
	case Layer1:
		return "Layer I"
	case Layer2:
		return "Layer II"
	case Layer3:
		return "Layer III"
	default:
		return fmt.Sprintf("Layer(%d)", uint8(l))
	}
}

// ChannelMode is the channel mode field of a frame header.
type ChannelMode uint8

const (
	ChannelModeStereo ChannelMode = iota
	ChannelModeJointStereo
	ChannelModeDualChannel
	ChannelModeMono
)

func (m ChannelMode) String() string {
	switch m {
	case ChannelModeStereo:
		return "stereo"
	case ChannelModeJointStereo:
		return "joint stereo"
	case ChannelModeDualChannel:
		return "dual channel"
	case ChannelModeMono:
		return "mono"
	default:
		return fmt.Sprintf("ChannelMode(%d)", uint8(m))
	}
}

// Header is a snapshot of a decoded MPEG audio frame header.
//
// Header is a plain value: copying it copies every field, so a Header stored
// inside a parsed frame is never affected by later changes to the caller's
// copy.
type Header struct {
	Version         Version
	Layer           Layer
	ChannelMode     ChannelMode
	Bitrate         int // bits per second
	SampleRate      int // Hz
	SamplesPerFrame int
	Channels        int
	FrameSize       int // bytes, including the 4-byte header
	Padding         bool
	Protected       bool // CRC follows the header
}

// String returns a short description such as
// "MPEG-1 Layer III, 128 kbps, 44100 Hz, joint stereo".
func (h Header) String() string {
	return fmt.Sprintf("%s %s, %d kbps, %d Hz, %s",
		h.Version, h.Layer, h.Bitrate/1000, h.SampleRate, h.ChannelMode)
}
