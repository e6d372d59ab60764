// Package xing decodes the LAME Xing/Info frame carried in the first audio
// frame of an MP3 stream.
//
// The frame holds an optional frame count, stream size and 100-entry seek
// table, selected by a flag word, followed by the LAME extension: ReplayGain
// peak and gain fields and the encoder delay and padding. The extension has
// no flag; its presence is inferred from how many bytes remain in the frame.
//
// Locating the frame and checking the "Xing"/"Info" marker is the caller's
// job. Parse starts immediately after the marker.
package xing
