// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource streams a Buffer as interleaved samples. It is the entry
// point of a processing graph that starts from in-memory audio.
type BufferSource struct {
	buf *Buffer
	pos int // next frame
}

func NewBufferSource(buf *Buffer) *BufferSource {
	return &BufferSource{buf: buf}
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate() }
func (s *BufferSource) Channels() int   { return s.buf.Channels() }
func (s *BufferSource) BufSize() int    { return 4096 }
func (s *BufferSource) Close() error    { return nil }

// ReadSamples interleaves as many whole frames as fit in dst. The read that
// reaches the end of the buffer returns io.EOF together with its samples.
func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := s.buf.Len() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for c, ch := range s.buf.channels {
		src := ch[s.pos : s.pos+frames]
		for f, v := range src {
			dst[f*channels+c] = v
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Len() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
