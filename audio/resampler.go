// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audcut/utils"
)

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation over a four frame window. Channel count is preserved.
//
// No band limiting is applied when downsampling.
type Resampler struct {
	src      Source
	channels int
	dstRate  int
	step     float64 // source frames per output frame

	// window[1] is the frame at the integer part of the read position,
	// window[0] the one before it, window[2] and window[3] the ones after.
	// Frames past either end of the stream repeat the edge frame.
	window [4][]float32
	real   [4]bool
	pos    float64 // fractional offset from window[1]
	primed bool

	in      []float32
	inPos   int
	inLen   int
	srcDone bool
	empty   int
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	size := 4096 - 4096%channels
	if size == 0 {
		size = channels
	}

	r := &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		in:       make([]float32, size),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// nextFrame copies the next source frame into dst. It reports false once
// the source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.inLen-r.inPos < r.channels {
		if r.srcDone {
			return false, nil
		}

		r.inLen = copy(r.in, r.in[r.inPos:r.inLen])
		r.inPos = 0

		n, err := r.src.ReadSamples(r.in[r.inLen:])
		r.inLen += n

		switch {
		case err == io.EOF:
			r.srcDone = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		case n == 0:
			r.empty++
			if r.empty > maxEmptyReads {
				return false, io.ErrNoProgress
			}
		default:
			r.empty = 0
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	return true, nil
}

func (r *Resampler) prime() error {
	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	r.real[1] = true

	for i := 2; i < 4; i++ {
		ok, err := r.nextFrame(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.real[i] = ok
	}

	r.primed = true

	return nil
}

func (r *Resampler) advance() error {
	w0 := r.window[0]
	r.window[0], r.window[1], r.window[2] = r.window[1], r.window[2], r.window[3]
	r.real[1], r.real[2] = r.real[2], r.real[3]
	r.window[3] = w0

	ok, err := r.nextFrame(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.real[3] = ok

	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.step == 1 {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written++

		r.pos += r.step
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
	}

	return written * r.channels, nil
}
