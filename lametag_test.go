package lametag_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/simonhull/lametag"
)

const (
	mpeg1StereoHeader = 0xFFFB9040 // MPEG-1 Layer III, 128kbps, 44.1kHz
	mpeg1FrameSize    = 417
	mpeg1XingOffset   = 36
)

type fixture struct {
	id3Size   int
	tag       string
	body      []byte
	frameSize int // size of the tagged frame; defaults to mpeg1FrameSize
	noTrailer bool
}

// xingBody returns a fully populated frame body: all four flags, the LAME
// extension with ReplayGain, and encoder delay 576 / padding 1920.
func xingBody() []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(0x0F))
	binary.Write(buf, binary.BigEndian, uint32(100))
	binary.Write(buf, binary.BigEndian, uint32(41700))
	for i := 0; i < 100; i++ {
		buf.WriteByte(byte(i * 2))
	}
	binary.Write(buf, binary.BigEndian, uint32(78))
	buf.WriteString("LAME3.100")
	buf.Write([]byte{0x24, 0x9B})
	binary.Write(buf, binary.BigEndian, math.Float32bits(0.95))
	binary.Write(buf, binary.BigEndian, uint16(1<<13|3<<10|0x200|65)) // radio, model, -6.5
	binary.Write(buf, binary.BigEndian, uint16(2<<13|2<<10|25))       // audiophile, user, 2.5
	buf.Write([]byte{0x00, 0x80})
	buf.Write([]byte{0x24, 0x07, 0x80})
	return buf.Bytes()
}

func (fx fixture) bytes() []byte {
	buf := &bytes.Buffer{}

	if fx.id3Size > 0 {
		buf.Write([]byte{'I', 'D', '3', 3, 0, 0,
			byte(fx.id3Size>>21) & 0x7F, byte(fx.id3Size>>14) & 0x7F, byte(fx.id3Size>>7) & 0x7F, byte(fx.id3Size) & 0x7F})
		buf.Write(make([]byte, fx.id3Size))
	}

	size := fx.frameSize
	if size == 0 {
		size = mpeg1FrameSize
	}

	frame := make([]byte, mpeg1FrameSize)
	binary.BigEndian.PutUint32(frame, mpeg1StereoHeader)
	copy(frame[mpeg1XingOffset:], fx.tag)
	copy(frame[mpeg1XingOffset+4:], fx.body)
	buf.Write(frame[:size])

	if !fx.noTrailer {
		next := make([]byte, mpeg1FrameSize)
		binary.BigEndian.PutUint32(next, mpeg1StereoHeader)
		buf.Write(next)
	}

	return buf.Bytes()
}

func writeFixture(t testing.TB, fx fixture) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mp3")
	if err := os.WriteFile(path, fx.bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_XingFrame(t *testing.T) {
	path := writeFixture(t, fixture{id3Size: 256, tag: "Xing", body: xingBody()})

	file, err := lametag.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if file.Tag != lametag.TagXing || !file.VBR() {
		t.Errorf("expected Xing tag, got %v", file.Tag)
	}
	if file.FrameOffset != 266 {
		t.Errorf("expected frame at offset 266, got %d", file.FrameOffset)
	}
	if file.Header.SampleRate != 44100 || file.Header.SamplesPerFrame != 1152 {
		t.Errorf("unexpected header: %+v", file.Header)
	}
	if file.Duration != 2612222*time.Microsecond {
		t.Errorf("expected duration 2.612222s, got %s", file.Duration)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", file.Warnings)
	}

	count, ok := file.Xing.FrameCount()
	if !ok || count != 100 {
		t.Errorf("FrameCount() = %d, %v", count, ok)
	}
	size, ok := file.Xing.DataSize()
	if !ok || size != 41700 {
		t.Errorf("DataSize() = %d, %v", size, ok)
	}
	toc, ok := file.Xing.TableOfContents()
	if !ok || toc[0] != 0 || toc[50] != 100 || toc[99] != 198 {
		t.Errorf("TableOfContents() = %v, %v", toc, ok)
	}

	if file.ReplayGain == nil {
		t.Fatal("expected ReplayGain metadata")
	}
	want := lametag.ReplayGainMetadata{
		Peak:             0.95,
		Field1Name:       lametag.GainNameRadio,
		Field1Originator: lametag.OriginatorModel,
		Field1Value:      -6.5,
		Field2Name:       lametag.GainNameAudiophile,
		Field2Originator: lametag.OriginatorUser,
		Field2Value:      2.5,
	}
	if !file.ReplayGain.Equal(want) {
		t.Errorf("ReplayGain = %v, want %v", file.ReplayGain, want)
	}

	delay, ok := file.Xing.EncoderDelay()
	if !ok || delay != 576 {
		t.Errorf("EncoderDelay() = %d, %v", delay, ok)
	}
	padding, ok := file.Xing.EncoderPadding()
	if !ok || padding != 1920 {
		t.Errorf("EncoderPadding() = %d, %v", padding, ok)
	}
}

func TestOpen_InfoFrameWithoutLAME(t *testing.T) {
	body := make([]byte, 12)
	binary.BigEndian.PutUint32(body, 0x01)
	binary.BigEndian.PutUint32(body[4:], 500)
	// Zero the rest of the frame so the probe sees a short body.
	path := writeFixture(t, fixture{tag: "Info", body: body, frameSize: mpeg1XingOffset + 4 + 8 + 10, noTrailer: true})

	file, err := lametag.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if file.Tag != lametag.TagInfo || file.VBR() {
		t.Errorf("expected Info tag, got %v", file.Tag)
	}
	if file.ReplayGain != nil {
		t.Errorf("expected no ReplayGain, got %v", file.ReplayGain)
	}
	if file.Xing.HasReplayGain() {
		t.Error("HasReplayGain() should be false")
	}
	if len(file.Warnings) != 1 || file.Warnings[0].Stage != "sync" {
		t.Errorf("expected one truncation warning, got %v", file.Warnings)
	}
}

func TestOpen_NoXingTag(t *testing.T) {
	path := writeFixture(t, fixture{tag: "\x00\x00\x00\x00"})

	_, err := lametag.Open(path)
	if !errors.Is(err, lametag.ErrNoXingTag) {
		t.Errorf("expected ErrNoXingTag, got %v", err)
	}
}

func TestOpen_NoFrameSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.mp3")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0x12, 0x34}, 512), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := lametag.Open(path)
	var unsupported *lametag.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %T: %v", err, err)
	}
	if unsupported.Path != path {
		t.Errorf("expected path %s, got %s", path, unsupported.Path)
	}
	if !errors.Is(err, lametag.ErrNoFrameSync) {
		t.Errorf("expected error to wrap ErrNoFrameSync, got %v", err)
	}
}

func TestOpen_NotLayerIII(t *testing.T) {
	const (
		layer2Header    = 0xFFFDA400 // MPEG-1 Layer II, 192kbps, 48kHz
		layer2FrameSize = 576
	)

	data := make([]byte, 2*layer2FrameSize)
	binary.BigEndian.PutUint32(data, layer2Header)
	binary.BigEndian.PutUint32(data[layer2FrameSize:], layer2Header)
	copy(data[mpeg1XingOffset:], "Xing")

	_, err := lametag.OpenReader(bytes.NewReader(data), int64(len(data)), "layer2.mp2")
	var unsupported *lametag.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %T: %v", err, err)
	}
	if errors.Is(err, lametag.ErrNoFrameSync) {
		t.Errorf("a Layer II stream has frame sync, got %v", err)
	}
}

func TestOpen_TagWithoutFlags(t *testing.T) {
	path := writeFixture(t, fixture{tag: "Xing", frameSize: mpeg1XingOffset + 6, noTrailer: true})

	_, err := lametag.Open(path)
	var corrupted *lametag.CorruptedFileError
	if !errors.As(err, &corrupted) {
		t.Fatalf("expected CorruptedFileError, got %v", err)
	}
	if !errors.Is(err, lametag.ErrShortFrame) {
		t.Errorf("expected error to wrap ErrShortFrame, got %v", err)
	}
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := lametag.Open("/nonexistent/path.mp3")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestOpen_TruncatedTOCWarning(t *testing.T) {
	body := make([]byte, 4)
	binary.BigEndian.PutUint32(body, 0x04)
	path := writeFixture(t, fixture{tag: "Xing", body: body, frameSize: mpeg1XingOffset + 4 + 4 + 50, noTrailer: true})

	file, err := lametag.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	var stages []string
	for _, w := range file.Warnings {
		stages = append(stages, w.Stage)
	}
	if len(stages) != 2 || stages[0] != "sync" || stages[1] != "xing" {
		t.Errorf("expected sync and xing warnings, got %v", file.Warnings)
	}

	if _, err := lametag.Open(path, lametag.WithStrictParsing()); err == nil {
		t.Error("expected strict parsing to fail")
	}

	file, err = lametag.Open(path, lametag.WithIgnoreWarnings())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("expected warnings to be dropped, got %v", file.Warnings)
	}
}

func TestOpen_MaxScanBytes(t *testing.T) {
	path := writeFixture(t, fixture{id3Size: 0, tag: "Xing", body: xingBody()})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	padded := append(make([]byte, 2048), data...)
	if err := os.WriteFile(path, padded, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := lametag.Open(path, lametag.WithMaxScanBytes(1024)); !errors.Is(err, lametag.ErrNoFrameSync) {
		t.Errorf("expected ErrNoFrameSync with a short scan, got %v", err)
	}

	file, err := lametag.Open(path, lametag.WithMaxScanBytes(0))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if file.FrameOffset != 2048 {
		t.Errorf("expected frame at 2048, got %d", file.FrameOffset)
	}
}

func TestOpenReader(t *testing.T) {
	data := fixture{tag: "Xing", body: xingBody()}.bytes()

	file, err := lametag.OpenReader(bytes.NewReader(data), int64(len(data)), "memory.mp3")
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	if file.Path != "memory.mp3" || file.Size != int64(len(data)) {
		t.Errorf("unexpected file fields: %s %d", file.Path, file.Size)
	}
}

func TestOpen_IdenticalFilesGiveEqualReplayGain(t *testing.T) {
	a, err := lametag.Open(writeFixture(t, fixture{tag: "Xing", body: xingBody()}))
	if err != nil {
		t.Fatal(err)
	}
	b, err := lametag.Open(writeFixture(t, fixture{id3Size: 64, tag: "Xing", body: xingBody()}))
	if err != nil {
		t.Fatal(err)
	}

	if !a.ReplayGain.Equal(*b.ReplayGain) {
		t.Errorf("expected equal metadata: %v vs %v", a.ReplayGain, b.ReplayGain)
	}
	if a.ReplayGain.Hash() != b.ReplayGain.Hash() {
		t.Error("expected identical hashes")
	}
}
