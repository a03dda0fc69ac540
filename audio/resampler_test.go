// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audcut/internal/audiotest"
)

func TestResampler_SameRateIsExact(t *testing.T) {
	t.Parallel()

	buf, _ := NewBuffer(44100, audiotest.Planar(2, 3000, audiotest.Sine(44100, 1000))...)

	got, err := ReadBuffer(NewResampler(NewBufferSource(buf), 44100))
	if err != nil {
		t.Fatalf("ReadBuffer() error = %v", err)
	}

	assertBuffersEqual(t, got, buf)
}

func TestResampler_Downsample(t *testing.T) {
	t.Parallel()

	const frames = 1001
	buf, _ := NewBuffer(16000, audiotest.Planar(2, frames, audiotest.Ramp(5000, 10000))...)

	r := NewResampler(NewBufferSource(buf), 8000)
	if r.SampleRate() != 8000 || r.Channels() != 2 {
		t.Errorf("format = (%d Hz, %d ch), want (8000, 2)", r.SampleRate(), r.Channels())
	}

	got, err := ReadBuffer(r)
	if err != nil {
		t.Fatalf("ReadBuffer() error = %v", err)
	}

	// Output frame k sits exactly on source frame 2k.
	if want := (frames + 1) / 2; got.Len() != want {
		t.Fatalf("Len() = %d, want %d", got.Len(), want)
	}

	for c := range 2 {
		for k := range got.Len() {
			want := buf.Channel(c)[2*k]
			if math.Abs(float64(got.Channel(c)[k]-want)) > 1e-6 {
				t.Fatalf("channel %d frame %d = %v, want %v", c, k, got.Channel(c)[k], want)
			}
		}
	}
}

func TestResampler_UpsampleLinearInterior(t *testing.T) {
	t.Parallel()

	const frames = 200
	buf, _ := NewBuffer(8000, audiotest.Planar(1, frames, audiotest.Ramp(0, 1000))...)

	got, err := ReadBuffer(NewResampler(NewBufferSource(buf), 16000))
	if err != nil {
		t.Fatalf("ReadBuffer() error = %v", err)
	}

	if got.Len() != 2*frames {
		t.Fatalf("Len() = %d, want %d", got.Len(), 2*frames)
	}

	// Catmull-Rom reproduces a linear ramp away from the edges.
	for k := 4; k < 2*frames-6; k++ {
		want := float32(k) / 2 / 1000
		if math.Abs(float64(got.Channel(0)[k]-want)) > 1e-5 {
			t.Fatalf("frame %d = %v, want %v", k, got.Channel(0)[k], want)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 100), 8000)
	if _, err := r.ReadSamples(make([]float32, 5)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_SourceError(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 10000)
	src.FailAfter = 500

	if _, err := ReadBuffer(NewResampler(src, 22050)); !errors.Is(err, audiotest.ErrMockRead) {
		t.Errorf("ReadBuffer() error = %v, want ErrMockRead", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	got, err := ReadBuffer(NewResampler(audiotest.NewSilentSource(44100, 2, 0), 8000))
	if err != nil {
		t.Fatalf("ReadBuffer() error = %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}

func BenchmarkResampler(b *testing.B) {
	buf, _ := NewBuffer(44100, audiotest.Planar(2, 44100, audiotest.Sine(44100, 440))...)
	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		r := NewResampler(NewBufferSource(buf), 8000)
		for {
			if _, err := r.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
