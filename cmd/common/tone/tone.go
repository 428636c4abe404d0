// Package tone synthesizes sine tones as mono sample buffers.
//
// Every buffer is cut at its last near-zero sample so playback stops without
// an audible click. Buffers are never shared between tones.
package tone

import (
	"math"
	"time"
)

const (
	DefaultFrequency  = 400.0
	DefaultSampleRate = 44100
	DefaultThreshold  = 0.01
)

// Tone describes one audible emission.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64
}

// TrimPoint is the result of searching a buffer for its last near-zero
// sample. Found is false when no sample qualified.
type TrimPoint struct {
	Index int
	Found bool
}

// Buffer is a synthesized tone ready for playback.
type Buffer struct {
	Samples   []float64
	Generated int // sample count before trimming
	Trim      TrimPoint
}

// SampleCount returns how many samples cover d at sampleRate, rounding up.
func SampleCount(sampleRate int, d time.Duration) int {
	if sampleRate <= 0 || d <= 0 {
		return 0
	}
	num := int64(sampleRate) * int64(d)
	return int((num + int64(time.Second) - 1) / int64(time.Second))
}

// Sine generates sin(2*pi*n*freq/sampleRate) for every sample index n.
func Sine(freq float64, d time.Duration, sampleRate int) []float64 {
	n := SampleCount(sampleRate, d)
	samples := make([]float64, n)
	step := 2 * math.Pi * freq / float64(sampleRate)
	for i := range samples {
		samples[i] = math.Sin(step * float64(i))
	}
	return samples
}

// FindTrimPoint locates the last sample whose magnitude is below threshold.
// Index 0 never qualifies: the first sample of a sine is always silent and
// cutting there would drop the whole tone.
func FindTrimPoint(samples []float64, threshold float64) TrimPoint {
	for i := len(samples) - 1; i >= 1; i-- {
		if math.Abs(samples[i]) < threshold {
			return TrimPoint{Index: i, Found: true}
		}
	}
	return TrimPoint{}
}

// Trim cuts samples just after the trim point and forces the final sample to
// exactly zero. Without a trim point the buffer is returned unchanged.
func Trim(samples []float64, threshold float64) ([]float64, TrimPoint) {
	tp := FindTrimPoint(samples, threshold)
	if !tp.Found {
		return samples, tp
	}
	cut := samples[:tp.Index+1]
	cut[tp.Index] = 0
	return cut, tp
}

// Scale multiplies samples by volume in place, clamping to [-1, 1].
func Scale(samples []float64, volume float64) []float64 {
	for i, s := range samples {
		samples[i] = clamp(s * volume)
	}
	return samples
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

// Synth turns tone descriptors into trimmed, scaled buffers.
type Synth struct {
	SampleRate int
	Threshold  float64
}

// Synthesize generates, trims and scales one tone.
func (s Synth) Synthesize(t Tone) Buffer {
	samples := Sine(t.Frequency, t.Duration, s.SampleRate)
	generated := len(samples)
	samples, tp := Trim(samples, s.Threshold)
	return Buffer{
		Samples:   Scale(samples, t.Volume),
		Generated: generated,
		Trim:      tp,
	}
}

// Duration is the playback length of n samples at sampleRate.
func Duration(n, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(n) * int64(time.Second) / int64(sampleRate))
}
