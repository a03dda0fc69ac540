// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audcut/audio"
)

// go-mp3 always produces 16-bit little-endian stereo, duplicating mono input.
const channels = 2

// byteStream is the part of *gomp3.Decoder a source needs.
type byteStream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        byteStream
	sampleRate int
	buf        []byte
	carry      int // a trailing odd byte kept at buf[0] for the next read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.carry])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.carry:])
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	total := s.carry + n
	samples := total / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	s.carry = total % 2
	if s.carry == 1 {
		s.buf[0] = s.buf[total-1]
	}

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III through github.com/hajimehoshi/go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
