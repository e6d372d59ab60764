package lametag

import (
	"io"
	"log/slog"
)

// DefaultMaxScanBytes is how far past any ID3v2 tag Open looks for the
// first frame sync.
const DefaultMaxScanBytes = 64 * 1024

// Option configures behavior when opening files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := lametag.Open("song.mp3",
//	    lametag.WithStrictParsing(),
//	    lametag.WithLogger(slog.Default()),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	logger         *slog.Logger
	maxScanBytes   int64
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxScanBytes: DefaultMaxScanBytes,
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, lametag keeps going when the first frame is cut short or an
// ID3v2 header cannot be read, returning warnings alongside the parsed
// data. With strict parsing enabled, the first warning becomes an error.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// File.Warnings will always be empty. Warnings are still logged at warn
// level.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sets the logger used to trace each stage of locating and
// parsing the frame. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *openOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxScanBytes limits how many bytes after any ID3v2 tag are searched
// for the first frame sync. Zero or negative means search the whole file.
//
// Default is DefaultMaxScanBytes.
func WithMaxScanBytes(n int64) Option {
	return func(o *openOptions) {
		o.maxScanBytes = n
	}
}
