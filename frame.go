package lametag

import (
	"github.com/simonhull/lametag/internal/binary"
	"github.com/simonhull/lametag/internal/types"
	"github.com/simonhull/lametag/internal/xing"
)

// XingFrame is a decoded Xing/Info frame. See the accessor methods for the
// optional fields.
type XingFrame = xing.Frame

// Header is a snapshot of an MPEG audio frame header.
type Header = types.Header

// Tag identifies whether the frame was marked "Xing" or "Info".
type Tag = types.Tag

// Tag values.
const (
	TagXing = types.TagXing
	TagInfo = types.TagInfo
)

// GainField, GainName, GainOriginator, ReplayGain and ReplayGainMetadata
// describe the ReplayGain block of the LAME extension.
type (
	GainField          = types.GainField
	GainName           = types.GainName
	GainOriginator     = types.GainOriginator
	ReplayGain         = types.ReplayGain
	ReplayGainMetadata = types.ReplayGainMetadata
)

// Gain name and originator codes.
const (
	GainNameNotSet     = types.GainNameNotSet
	GainNameRadio      = types.GainNameRadio
	GainNameAudiophile = types.GainNameAudiophile

	OriginatorNotSet     = types.OriginatorNotSet
	OriginatorArtist     = types.OriginatorArtist
	OriginatorUser       = types.OriginatorUser
	OriginatorModel      = types.OriginatorModel
	OriginatorRMSAverage = types.OriginatorRMSAverage
)

// Parse decodes a Xing/Info frame from data, which must start immediately
// after the "Xing" or "Info" marker. header describes the frame that
// carried the marker and is copied into the result.
//
// Parse returns ErrShortFrame if data is shorter than the 4-byte flags word.
// Sections the flags promise but data does not hold are returned as read up
// to the end of data; use Open for warnings about such truncation.
func Parse(header Header, data []byte) (*XingFrame, error) {
	if len(data) < 4 {
		return nil, ErrShortFrame
	}
	return xing.Parse(header, binary.NewCursor(data)), nil
}

// DecodeGainField unpacks a 16-bit LAME gain field.
func DecodeGainField(v uint16) GainField {
	return xing.DecodeGainField(v)
}
