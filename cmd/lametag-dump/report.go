package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/simonhull/lametag"
)

type gainReport struct {
	Name       string  `json:"name"`
	Originator string  `json:"originator"`
	Value      float32 `json:"value_db"`
}

type replayGainReport struct {
	Peak   float32    `json:"peak"`
	Field1 gainReport `json:"field1"`
	Field2 gainReport `json:"field2"`
}

// report is the printable view of one file.
type report struct {
	Path           string            `json:"path"`
	Tag            string            `json:"tag"`
	Header         string            `json:"header"`
	FrameOffset    int64             `json:"frame_offset"`
	FrameCount     *uint32           `json:"frame_count,omitempty"`
	DataSize       *uint32           `json:"data_size,omitempty"`
	DurationUs     *int64            `json:"duration_us,omitempty"`
	TOC            []uint8           `json:"toc,omitempty"`
	ReplayGain     *replayGainReport `json:"replay_gain,omitempty"`
	EncoderDelay   *int              `json:"encoder_delay,omitempty"`
	EncoderPadding *int              `json:"encoder_padding,omitempty"`
	Warnings       []string          `json:"warnings,omitempty"`
}

func ptr[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

func gain(g lametag.GainField) gainReport {
	return gainReport{Name: g.Name.String(), Originator: g.Originator.String(), Value: g.Value}
}

func newReport(f *lametag.File) report {
	x := f.Xing
	r := report{
		Path:        f.Path,
		Tag:         f.Tag.String(),
		Header:      f.Header.String(),
		FrameOffset: f.FrameOffset,
		FrameCount:  ptr(x.FrameCount()),
		DataSize:    ptr(x.DataSize()),
		DurationUs:  ptr(x.DurationUs()),
	}

	if toc, ok := x.TableOfContents(); ok {
		r.TOC = toc[:]
	}
	if rg, ok := x.ReplayGain(); ok {
		r.ReplayGain = &replayGainReport{Peak: rg.Peak, Field1: gain(rg.Field1), Field2: gain(rg.Field2)}
	}
	r.EncoderDelay = ptr(x.EncoderDelay())
	r.EncoderPadding = ptr(x.EncoderPadding())

	for _, w := range f.Warnings {
		r.Warnings = append(r.Warnings, w.String())
	}
	return r
}

func writeJSON(w io.Writer, f *lametag.File) error {
	return json.NewEncoder(w).Encode(newReport(f))
}

func writeText(w io.Writer, f *lametag.File) error {
	r := newReport(f)

	lines := []string{
		r.Path,
		fmt.Sprintf("  Tag:          %s (frame at offset %d)", r.Tag, r.FrameOffset),
		fmt.Sprintf("  Header:       %s", r.Header),
	}
	if r.FrameCount != nil {
		lines = append(lines, fmt.Sprintf("  Frames:       %d", *r.FrameCount))
	}
	if r.DataSize != nil {
		lines = append(lines, fmt.Sprintf("  Data size:    %d bytes", *r.DataSize))
	}
	if r.DurationUs != nil {
		lines = append(lines, fmt.Sprintf("  Duration:     %s", f.Duration))
	}
	if r.TOC != nil {
		lines = append(lines, fmt.Sprintf("  Seek table:   100 entries, %d..%d", r.TOC[0], r.TOC[len(r.TOC)-1]))
	}
	if r.ReplayGain != nil {
		lines = append(lines,
			fmt.Sprintf("  Peak:         %g", r.ReplayGain.Peak),
			fmt.Sprintf("  Gain 1:       %+.1f dB (%s, %s)", r.ReplayGain.Field1.Value, r.ReplayGain.Field1.Name, r.ReplayGain.Field1.Originator),
			fmt.Sprintf("  Gain 2:       %+.1f dB (%s, %s)", r.ReplayGain.Field2.Value, r.ReplayGain.Field2.Name, r.ReplayGain.Field2.Originator),
		)
	}
	if r.EncoderDelay != nil {
		lines = append(lines, fmt.Sprintf("  Trim:         %d samples delay, %d samples padding", *r.EncoderDelay, *r.EncoderPadding))
	}
	for _, warn := range r.Warnings {
		lines = append(lines, "  Warning:      "+warn)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
