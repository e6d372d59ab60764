package mpeg

import (
	"fmt"

	binutil "github.com/simonhull/lametag/internal/binary"
)

const (
	id3HeaderSize   = 10
	id3FooterSize   = 10
	id3FlagFooter   = 0x10
	id3MinMajorVers = 2
	id3MaxMajorVers = 4
)

// SkipID3v2 returns the offset of the first byte after any ID3v2 tags at
// the start of the stream. Several tags may be stacked back to back. It
// returns 0 when there is no tag.
func SkipID3v2(sr *binutil.SafeReader) (int64, error) {
	var offset int64
	buf := make([]byte, id3HeaderSize)

	for offset+id3HeaderSize <= sr.Size() {
		if err := sr.ReadAt(buf, offset, "ID3v2 header"); err != nil {
			return offset, err
		}

		if string(buf[0:3]) != "ID3" {
			return offset, nil
		}

		if buf[3] < id3MinMajorVers || buf[3] > id3MaxMajorVers {
			return offset, fmt.Errorf("unsupported ID3v2 version: 2.%d.%d", buf[3], buf[4])
		}

		size := int64(decodeSynchsafe(buf[6:10])) + id3HeaderSize
		if buf[5]&id3FlagFooter != 0 {
			size += id3FooterSize
		}
		offset += size
	}

	return offset, nil
}

// decodeSynchsafe decodes a 4-byte synchsafe integer (7 bits per byte).
func decodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}
