package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFrameSync is returned when no valid MPEG audio frame header is
	// found within the scanned region.
	ErrNoFrameSync = errors.New("no MPEG audio frame sync found")

	// ErrNoXingTag is returned when the first audio frame carries neither a
	// "Xing" nor an "Info" tag.
	ErrNoXingTag = errors.New("no Xing/Info tag in first frame")

	// ErrShortFrame is returned when fewer than 4 bytes follow the tag, so
	// not even the flags word can be read.
	ErrShortFrame = errors.New("xing frame too short for flags word")
)

// OutOfBoundsError is returned when attempting to read beyond the stream.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset < 0 || e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when the stream is not MPEG Layer III
// audio.
type UnsupportedFormatError struct {
	Err    error
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *UnsupportedFormatError) Unwrap() error {
	return e.Err
}

// CorruptedFileError is returned when file structure is invalid.
type CorruptedFileError struct {
	Err    error
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *CorruptedFileError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent the Xing frame from being
// read but may indicate truncated or unusual data. Examples include:
//   - An ID3v2 header that could not be read
//   - A first frame that extends past the end of the file
//   - A flag-gated section cut short by the end of the frame
type Warning struct {
	// Stage where the warning occurred
	Stage string // "id3", "sync", "xing"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
