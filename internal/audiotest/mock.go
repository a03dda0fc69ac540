// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests.
//
// It deliberately does not import the audio package so that tests inside
// package audio can use it too.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrMockRead is returned by a MockSource configured to fail.
var ErrMockRead = errors.New("mock read failure")

// Waveform yields the value of a sample given its frame index and channel.
type Waveform func(frame, channel int) float32

// Sine is a full scale sine of frequency Hz, phase shifted per channel so
// channels are distinguishable.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2*math.Pi*frequency*t + float64(channel)*math.Pi/2))
	}
}

// Constant returns value on every channel.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// Ramp returns a value that encodes frame and channel, useful for checking
// that samples land where expected: channel c at frame f is
// (f + c*offset) / scale.
func Ramp(offset int, scale float32) Waveform {
	return func(frame, channel int) float32 {
		return float32(frame+channel*offset) / scale
	}
}

// Planar renders a waveform into per channel slices.
func Planar(channels, frames int, wave Waveform) [][]float32 {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for f := range data[c] {
			data[c][f] = wave(f, c)
		}
	}

	return data
}

// MockSource generates audio and implements the audio.Source interface.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     Waveform

	// FailAfter makes ReadSamples return ErrMockRead once this many frames
	// were produced. Negative disables it.
	FailAfter int
	// Closed reports whether Close was called.
	Closed bool
}

// NewMockSource creates a source of totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
		FailAfter:    -1,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, Constant(0))
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, Sine(sampleRate, frequency))
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.FailAfter >= 0 && m.generated >= m.FailAfter {
		return 0, ErrMockRead
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.FailAfter >= 0 {
		frames = min(frames, m.FailAfter-m.generated)
	}

	for frame := range frames {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	written := frames * m.channels

	if m.generated >= m.totalSamples {
		return written, io.EOF
	}

	return written, nil
}
