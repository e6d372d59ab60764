package lametag

import (
	"github.com/simonhull/lametag/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
type CorruptedFileError = types.CorruptedFileError

// Warning is an alias to types.Warning.
type Warning = types.Warning

var (
	// ErrNoFrameSync is returned when no MPEG audio frame is found.
	ErrNoFrameSync = types.ErrNoFrameSync

	// ErrNoXingTag is returned when the first frame has no Xing/Info tag.
	ErrNoXingTag = types.ErrNoXingTag

	// ErrShortFrame is returned by Parse when the data cannot hold the
	// flags word.
	ErrShortFrame = types.ErrShortFrame
)
