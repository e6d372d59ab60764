// Package lametag reads the LAME Xing/Info frame at the start of an MP3
// stream.
//
// Encoders write a pseudo audio frame before the first real one. It
// carries the number of frames in the stream, the stream size, a 100-entry
// seek table, and, for LAME and compatible encoders, ReplayGain data and
// the encoder delay and padding needed for gapless playback.
//
// # Quick Start
//
//	file, err := lametag.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s frame, duration %s\n", file.Tag, file.Duration)
//	if delay, ok := file.Xing.EncoderDelay(); ok {
//		padding, _ := file.Xing.EncoderPadding()
//		fmt.Printf("trim %d samples at start, %d at end\n", delay, padding)
//	}
//
// # Parsing Bytes Directly
//
// A demuxer that already has the frame in memory and has checked the
// marker can call Parse with the bytes that follow it:
//
//	frame, err := lametag.Parse(header, data[xingOffset+4:])
//
// # Optional Fields
//
// Every field of the frame is optional. Accessors return the value and a
// presence flag, so a frame count of zero is distinguishable from a frame
// with no frame count. The LAME extension is not announced by a flag; it is
// decoded only when the frame is long enough to hold it, and is otherwise
// reported as absent rather than as an error.
//
// # Concurrency
//
// Parsing holds no shared state, and a returned XingFrame is immutable, so
// both are safe for concurrent use. OpenMany parses several files in
// parallel.
//
// # Error Handling
//
// Open returns an error only when there is no frame to decode (no MPEG
// frame sync, no marker, or a marker with nothing after it). Truncation
// past that point is reported in File.Warnings. See WithStrictParsing and
// WithIgnoreWarnings.
package lametag
