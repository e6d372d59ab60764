package xing

import (
	"math"
	"math/bits"
)

const microsPerSecond = 1_000_000

// DurationUs returns the stream duration in microseconds.
//
// The duration spans from the first to the last sample, so it is computed
// from frameCount*samplesPerFrame - 1 samples. Division rounds toward zero.
// It reports false when the frame count is absent or zero, when the header
// has no usable sample rate, or when the result does not fit in an int64.
func (f *Frame) DurationUs() (int64, bool) {
	if !f.hasFrameCount || f.frameCount == 0 {
		return 0, false
	}
	if f.header.SampleRate <= 0 || f.header.SamplesPerFrame <= 0 {
		return 0, false
	}
	return samplesToDurationUs(uint64(f.frameCount)*uint64(f.header.SamplesPerFrame)-1, uint64(f.header.SampleRate))
}

// samplesToDurationUs computes samples*1e6/sampleRate without overflow.
func samplesToDurationUs(samples, sampleRate uint64) (int64, bool) {
	hi, lo := bits.Mul64(samples, microsPerSecond)
	if hi >= sampleRate {
		return 0, false
	}
	quo, _ := bits.Div64(hi, lo, sampleRate)
	if quo > math.MaxInt64 {
		return 0, false
	}
	return int64(quo), true
}
