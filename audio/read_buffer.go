// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads a Source may
// return before it is considered stuck.
const maxEmptyReads = 64

// ReadBuffer drains src into a Buffer, splitting the interleaved stream into
// channels. A trailing partial frame is dropped. ReadBuffer does not close
// src.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	defer src.Close()
//	buf, err := audio.ReadBuffer(src)
func ReadBuffer(src Source) (*Buffer, error) {
	channels := src.Channels()
	sampleRate := src.SampleRate()
	if channels <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrInvalidSource, channels, sampleRate)
	}

	size := max(src.BufSize(), 4096)
	size -= size % channels

	var interleaved []float32
	chunk := make([]float32, size)
	empty := 0

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			interleaved = append(interleaved, chunk[:n]...)
			empty = 0
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}

	frames := len(interleaved) / channels
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			data[c][f] = interleaved[base+c]
		}
	}

	return NewBuffer(sampleRate, data...)
}
