package xing

import "github.com/simonhull/lametag/internal/types"

const (
	gainNameShift       = 13
	gainOriginatorShift = 10
	gainCodeMask        = 0x7
	gainSignBit         = 0x200
	gainMagnitudeMask   = 0x1FF
)

// DecodeGainField unpacks a 16-bit LAME gain field.
//
//	bits 15-13  name
//	bits 12-10  originator
//	bit  9      sign (1 = negative)
//	bits 8-0    magnitude, in tenths of a dB
//
// The value is sign-magnitude, not two's complement.
func DecodeGainField(v uint16) types.GainField {
	magnitude := int32(v & gainMagnitudeMask)
	if v&gainSignBit != 0 {
		magnitude = -magnitude
	}
	return types.GainField{
		Name:       types.GainName((v >> gainNameShift) & gainCodeMask),
		Originator: types.GainOriginator((v >> gainOriginatorShift) & gainCodeMask),
		Value:      float32(magnitude) / 10,
	}
}
