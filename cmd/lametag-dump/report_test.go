package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/lametag"
)

// openFixture builds a single MPEG-1 Layer III frame carrying an Info tag
// with a frame count and a LAME extension.
func openFixture(t *testing.T) *lametag.File {
	t.Helper()

	frame := make([]byte, 417)
	binary.BigEndian.PutUint32(frame, 0xFFFB9040)
	copy(frame[36:], "Info")

	body := frame[40:]
	binary.BigEndian.PutUint32(body, 0x01)
	binary.BigEndian.PutUint32(body[4:], 100)
	lame := body[8:]
	copy(lame, "LAME3.100")
	binary.BigEndian.PutUint16(lame[15:], 1<<13|3<<10|0x200|65)
	copy(lame[21:], []byte{0x24, 0x07, 0x80})

	f, err := lametag.OpenReader(bytes.NewReader(frame), int64(len(frame)), "fixture.mp3")
	require.NoError(t, err)
	return f
}

func TestWriteText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeText(&out, openFixture(t)))

	text := out.String()
	for _, want := range []string{
		"fixture.mp3",
		"Tag:          Info",
		"Frames:       100",
		"Duration:     2.612222s",
		"Gain 1:       -6.5 dB (radio, replaygain model)",
		"Trim:         576 samples delay, 1920 samples padding",
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "Seek table")
	assert.False(t, strings.Contains(text, "Warning"), "unexpected warnings:\n%s", text)
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, openFixture(t)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, "Info", got["tag"])
	assert.Equal(t, float64(100), got["frame_count"])
	assert.Equal(t, float64(2612222), got["duration_us"])
	assert.Equal(t, float64(576), got["encoder_delay"])
	assert.NotContains(t, got, "data_size")
	assert.NotContains(t, got, "toc")
	assert.Contains(t, got, "replay_gain")
}
