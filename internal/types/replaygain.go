package types

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
)

// GainName identifies which ReplayGain adjustment a gain field carries.
// It is the 3-bit NAME code of a LAME gain field. Codes 3 to 7 are reserved;
// they are kept as-is and report IsReserved.
type GainName uint8

const (
	GainNameNotSet     GainName = 0
	GainNameRadio      GainName = 1
	GainNameAudiophile GainName = 2
)

// IsReserved reports whether n is outside the defined vocabulary.
func (n GainName) IsReserved() bool {
	return n > GainNameAudiophile
}

func (n GainName) String() string {
	switch n {
	case GainNameNotSet:
		return "not set"
	case GainNameRadio:
		return "radio"
	case GainNameAudiophile:
		return "audiophile"
	default:
		return fmt.Sprintf("reserved(%d)", uint8(n))
	}
}

// GainOriginator identifies who set a gain adjustment.
// It is the 3-bit ORIGINATOR code of a LAME gain field. Codes 5 to 7 are
// reserved.
type GainOriginator uint8

const (
	OriginatorNotSet     GainOriginator = 0
	OriginatorArtist     GainOriginator = 1
	OriginatorUser       GainOriginator = 2
	OriginatorModel      GainOriginator = 3
	OriginatorRMSAverage GainOriginator = 4
)

// IsReserved reports whether o is outside the defined vocabulary.
func (o GainOriginator) IsReserved() bool {
	return o > OriginatorRMSAverage
}

func (o GainOriginator) String() string {
	switch o {
	case OriginatorNotSet:
		return "not set"
	case OriginatorArtist:
		return "artist"
	case OriginatorUser:
		return "user"
	case OriginatorModel:
		return "replaygain model"
	case OriginatorRMSAverage:
		return "rms average"
	default:
		return fmt.Sprintf("reserved(%d)", uint8(o))
	}
}

// GainField is one decoded ReplayGain adjustment.
type GainField struct {
	Name       GainName
	Originator GainOriginator
	Value      float32 // dB, one decimal of precision
}

// ReplayGain is the ReplayGain block of a LAME Xing/Info frame.
//
// The first field is conventionally the radio (track) gain and the second
// the audiophile (album) gain, but Name is authoritative.
type ReplayGain struct {
	Peak   float32 // 1.0 is full scale; 0 means unknown
	Field1 GainField
	Field2 GainField
}

// Metadata flattens r into its seven numeric components.
func (r ReplayGain) Metadata() ReplayGainMetadata {
	return ReplayGainMetadata{
		Peak:             r.Peak,
		Field1Name:       r.Field1.Name,
		Field1Originator: r.Field1.Originator,
		Field1Value:      r.Field1.Value,
		Field2Name:       r.Field2.Name,
		Field2Originator: r.Field2.Originator,
		Field2Value:      r.Field2.Value,
	}
}

// ReplayGainMetadata is the ReplayGain data of a Xing/Info frame as a
// flat value, suitable for caching and deduplication.
//
// Use Equal rather than == when the float components may be NaN: Equal
// compares bit patterns, so a value always equals itself.
type ReplayGainMetadata struct {
	Peak             float32
	Field1Name       GainName
	Field1Originator GainOriginator
	Field1Value      float32
	Field2Name       GainName
	Field2Originator GainOriginator
	Field2Value      float32
}

// Equal reports whether m and o have identical components.
func (m ReplayGainMetadata) Equal(o ReplayGainMetadata) bool {
	return math.Float32bits(m.Peak) == math.Float32bits(o.Peak) &&
		m.Field1Name == o.Field1Name &&
		m.Field1Originator == o.Field1Originator &&
		math.Float32bits(m.Field1Value) == math.Float32bits(o.Field1Value) &&
		m.Field2Name == o.Field2Name &&
		m.Field2Originator == o.Field2Originator &&
		math.Float32bits(m.Field2Value) == math.Float32bits(o.Field2Value)
}

// Hash returns a 64-bit FNV-1a hash of the components. Values that are
// Equal hash identically.
func (m ReplayGainMetadata) Hash() uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint32(buf[0:4], math.Float32bits(m.Peak))
	buf[4] = uint8(m.Field1Name)
	buf[5] = uint8(m.Field1Originator)
	binary.BigEndian.PutUint32(buf[6:10], math.Float32bits(m.Field1Value))
	buf[10] = uint8(m.Field2Name)
	buf[11] = uint8(m.Field2Originator)
	binary.BigEndian.PutUint32(buf[12:16], math.Float32bits(m.Field2Value))

	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

func (m ReplayGainMetadata) String() string {
	return "ReplayGain Xing/Info: " +
		"peak=" + formatFloat(m.Peak) +
		", f1 name=" + strconv.Itoa(int(m.Field1Name)) +
		", f1 orig=" + strconv.Itoa(int(m.Field1Originator)) +
		", f1 val=" + formatFloat(m.Field1Value) +
		", f2 name=" + strconv.Itoa(int(m.Field2Name)) +
		", f2 orig=" + strconv.Itoa(int(m.Field2Originator)) +
		", f2 val=" + formatFloat(m.Field2Value)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
