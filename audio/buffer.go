// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Buffer is decoded PCM held in memory as one float32 slice per channel.
// Samples are expected in [-1, 1] but this is not enforced.
//
// A Buffer is treated as immutable once built: operations that derive audio
// from it allocate a new Buffer.
type Buffer struct {
	channels   [][]float32
	sampleRate int
}

// NewBuffer builds a Buffer from planar channel data. The Buffer takes
// ownership of the slices; callers must not modify them afterwards.
func NewBuffer(sampleRate int, channels ...[]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	length := len(channels[0])
	for i, ch := range channels[1:] {
		if len(ch) != length {
			return nil, fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrChannelLength, i+1, len(ch), length)
		}
	}

	return &Buffer{
		channels:   channels,
		sampleRate: sampleRate,
	}, nil
}

// NewSilentBuffer allocates a zeroed Buffer of the given shape.
func NewSilentBuffer(sampleRate, channels, frames int) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	data := make([][]float32, channels)
	for i := range data {
		data[i] = make([]float32, frames)
	}

	return NewBuffer(sampleRate, data...)
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return len(b.channels) }

// Len is the number of frames (samples per channel).
func (b *Buffer) Len() int { return len(b.channels[0]) }

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Len()) / float64(b.sampleRate)
}

// Channel returns the samples of channel i. The slice is shared with the
// Buffer and must be treated as read-only.
func (b *Buffer) Channel(i int) []float32 {
	return b.channels[i]
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	channels := make([][]float32, len(b.channels))
	for i, ch := range b.channels {
		channels[i] = make([]float32, len(ch))
		copy(channels[i], ch)
	}

	return &Buffer{
		channels:   channels,
		sampleRate: b.sampleRate,
	}
}
