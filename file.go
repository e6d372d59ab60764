package lametag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/lametag/internal/binary"
	"github.com/simonhull/lametag/internal/mpeg"
	"github.com/simonhull/lametag/internal/types"
	"github.com/simonhull/lametag/internal/xing"
)

// File is the Xing/Info information read from one MP3 stream.
type File struct {
	// Path to the file
	Path string

	// File size in bytes
	Size int64

	// Marker that introduced the frame
	Tag Tag

	// Offset of the frame carrying the tag
	FrameOffset int64

	// Header of the frame carrying the tag
	Header Header

	// Decoded frame
	Xing *XingFrame

	// Stream duration, 0 when the frame has no usable frame count
	Duration time.Duration

	// ReplayGain data, nil when the frame has no LAME extension
	ReplayGain *ReplayGainMetadata

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning
}

// VBR reports whether the stream was marked as variable bitrate ("Xing").
func (f *File) VBR() bool {
	return f.Tag == TagXing
}

// Open reads the Xing/Info frame of an MP3 file.
//
// Open skips any ID3v2 tags, finds the first MPEG audio frame, checks it
// for a "Xing" or "Info" marker and decodes what follows. A stream with no
// MPEG audio frame, or whose first frame is not Layer III, yields an
// *UnsupportedFormatError (wrapping ErrNoFrameSync in the first case); a
// frame without the marker yields an error wrapping ErrNoXingTag. The file
// is closed before Open returns.
//
// Example:
//
//	file, err := lametag.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Println(file.Duration)
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return OpenReader(f, stat.Size(), path, opts...)
}

// OpenContext is Open with a context check before any I/O.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenReader reads the Xing/Info frame from r, which holds size bytes.
// path is used only in errors and warnings.
func OpenReader(r io.ReaderAt, size int64, path string, opts ...Option) (*File, error) {
	options := applyOptions(opts)
	log := options.logger.With(slog.String("path", path))

	file := &File{
		Path: path,
		Size: size,
	}

	sr := binary.NewSafeReader(r, size, path)

	audioStart, err := mpeg.SkipID3v2(sr)
	if err != nil {
		file.warn(log, "id3", audioStart, "ID3v2 parsing failed: "+err.Error())
	} else if audioStart > 0 {
		log.Debug("id3 skipped", slog.Int64("bytes", audioStart))
	}

	frame, err := mpeg.FindFrame(sr, audioStart, options.maxScanBytes)
	if errors.Is(err, ErrNoFrameSync) {
		return nil, &UnsupportedFormatError{
			Err:    err,
			Path:   path,
			Reason: "no MPEG audio frame found",
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("frame sync found",
		slog.Int64("offset", frame.Offset),
		slog.String("header", frame.Header.String()))

	if frame.Header.Layer != types.Layer3 {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("first frame is %s, Xing/Info tags are written to Layer III only", frame.Header),
		}
	}

	if frame.Truncated() {
		file.warn(log, "sync", frame.Offset,
			fmt.Sprintf("first frame truncated: %d of %d bytes", len(frame.Data), frame.Header.FrameSize))
	}

	tagOffset := mpeg.XingOffset(frame.Header)
	if len(frame.Data) < tagOffset+4 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoXingTag)
	}
	tag, ok := types.ParseTag(frame.Data[tagOffset : tagOffset+4])
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNoXingTag)
	}

	body := frame.Data[tagOffset+4:]
	bodyOffset := frame.Offset + int64(tagOffset) + 4
	if len(body) < 4 {
		return nil, &CorruptedFileError{
			Err:    ErrShortFrame,
			Path:   path,
			Reason: fmt.Sprintf("%s tag followed by %d bytes", tag, len(body)),
			Offset: bodyOffset,
		}
	}
	log.Debug("xing tag found", slog.String("tag", tag.String()), slog.Int64("offset", bodyOffset-4))

	cursor := binary.NewCursor(body)
	x := xing.Parse(frame.Header, cursor)
	if err := cursor.Err(); err != nil {
		file.warn(log, "xing", bodyOffset, "flagged section cut short: "+err.Error())
	}

	file.Tag = tag
	file.FrameOffset = frame.Offset
	file.Header = frame.Header
	file.Xing = x
	if d, ok := x.Duration(); ok {
		file.Duration = d
	}
	if m, ok := x.ReplayGainMetadata(); ok {
		file.ReplayGain = &m
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0].Message)
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

func (f *File) warn(log *slog.Logger, stage string, offset int64, msg string) {
	log.Warn(msg, slog.String("stage", stage), slog.Int64("offset", offset))
	f.Warnings = append(f.Warnings, Warning{
		Stage:   stage,
		Message: msg,
		Offset:  offset,
	})
}

// OpenMany opens multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails, OpenMany returns the first error and no results.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := lametag.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s\n", f.Path, f.Duration)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path, opts...)
			if err != nil {
				return err
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
