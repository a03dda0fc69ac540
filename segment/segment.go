// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"fmt"
	"math"

	"github.com/ik5/audcut/audio"
)

// Range is a selection in seconds from the start of a recording.
type Range struct {
	Start float64
	End   float64
}

// Length of the selection in seconds.
func (r Range) Length() float64 { return r.End - r.Start }

func (r Range) String() string {
	return fmt.Sprintf("[%.3fs, %.3fs)", r.Start, r.End)
}

// SampleBounds converts r to frame indices of buf. The span end-start is
// round((End-Start)*rate) and begins at round(Start*rate), moved back when
// it would otherwise run past the last frame.
func SampleBounds(buf *audio.Buffer, r Range) (start, end int, err error) {
	if buf == nil {
		return 0, 0, ErrNoSource
	}

	// Negated comparisons so NaN is rejected too.
	if !(r.Start >= 0) || !(r.End <= buf.Duration()) {
		return 0, 0, fmt.Errorf("%w: %s of %.3fs", ErrOutOfBounds, r, buf.Duration())
	}

	if r.Start >= r.End {
		return 0, 0, fmt.Errorf("%w: %s", ErrEmptyRange, r)
	}

	rate := float64(buf.SampleRate())
	length := min(int(math.Round(r.Length()*rate)), buf.Len())
	if length == 0 {
		return 0, 0, fmt.Errorf("%w: %s is shorter than one sample", ErrEmptyRange, r)
	}

	start = min(int(math.Round(r.Start*rate)), buf.Len()-length)

	return start, start + length, nil
}

// Extract copies the frames selected by r into a new Buffer with the same
// channel count and sample rate. The source buffer is left untouched and
// shares no memory with the result.
func Extract(buf *audio.Buffer, r Range) (*audio.Buffer, error) {
	start, end, err := SampleBounds(buf, r)
	if err != nil {
		return nil, err
	}

	channels := make([][]float32, buf.Channels())
	for i := range channels {
		channels[i] = make([]float32, end-start)
		copy(channels[i], buf.Channel(i)[start:end])
	}

	return audio.NewBuffer(buf.SampleRate(), channels...)
}
