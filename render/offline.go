// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ik5/audcut/audio"
)

const (
	// DefaultQuantum is the number of frames pulled through the graph per
	// render block.
	DefaultQuantum = 128

	maxEmptyReads = 64
)

// Option configures an Offline renderer.
type Option func(*Offline) error

// WithSampleRate resamples the output to hz.
func WithSampleRate(hz int) Option {
	return func(o *Offline) error {
		if hz <= 0 {
			return fmt.Errorf("%w: sample rate %d", ErrInvalidOption, hz)
		}
		o.sampleRate = hz

		return nil
	}
}

// WithMono downmixes the output to a single channel.
func WithMono() Option {
	return func(o *Offline) error {
		o.mono = true
		return nil
	}
}

// WithQuantum sets the render block size in frames.
func WithQuantum(frames int) Option {
	return func(o *Offline) error {
		if frames <= 0 {
			return fmt.Errorf("%w: quantum %d", ErrInvalidOption, frames)
		}
		o.quantum = frames

		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Offline) error {
		if l != nil {
			o.logger = l
		}

		return nil
	}
}

// Offline renders a buffer through a fixed processing graph into a
// destination sized up front, the way an offline audio context does.
// An Offline is safe for concurrent use; every Start builds its own graph.
type Offline struct {
	sampleRate int // 0 keeps the input rate
	mono       bool
	quantum    int
	logger     *slog.Logger

	// head builds the first stage of the graph.
	head func(*audio.Buffer) audio.Source
}

func NewOffline(opts ...Option) (*Offline, error) {
	o := &Offline{
		quantum: DefaultQuantum,
		logger:  slog.New(slog.DiscardHandler),
		head: func(buf *audio.Buffer) audio.Source {
			return audio.NewBufferSource(buf)
		},
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// plan is the shape of the destination buffer.
type plan struct {
	channels   int
	sampleRate int
	frames     int
}

func (o *Offline) plan(buf *audio.Buffer) plan {
	p := plan{
		channels:   buf.Channels(),
		sampleRate: buf.SampleRate(),
		frames:     buf.Len(),
	}

	if o.mono {
		p.channels = 1
	}

	if o.sampleRate > 0 && o.sampleRate != p.sampleRate {
		src := buf.SampleRate()
		p.frames = (buf.Len()*o.sampleRate + src - 1) / src
		p.sampleRate = o.sampleRate
	}

	return p
}

func (o *Offline) graph(buf *audio.Buffer) audio.Source {
	src := o.head(buf)

	if o.mono && src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}

	if o.sampleRate > 0 && o.sampleRate != src.SampleRate() {
		src = audio.NewResampler(src, o.sampleRate)
	}

	return src
}

// Render runs the graph over buf and waits for it.
func (o *Offline) Render(ctx context.Context, buf *audio.Buffer) (*audio.Buffer, error) {
	return o.Start(buf).Wait(ctx)
}

// Start begins rendering buf on its own goroutine. The job always runs to
// completion, whatever happens to the callers waiting on it.
func (o *Offline) Start(buf *audio.Buffer) *Job {
	j := &Job{done: make(chan struct{})}

	if buf == nil {
		j.err = ErrNilBuffer
		close(j.done)

		return j
	}

	go func() {
		defer close(j.done)
		j.buf, j.err = o.run(buf)
	}()

	return j
}

func (o *Offline) run(buf *audio.Buffer) (*audio.Buffer, error) {
	began := time.Now()
	p := o.plan(buf)

	src := o.graph(buf)
	defer src.Close()

	if src.Channels() != p.channels {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrChannelCount, p.channels, src.Channels())
	}

	dst := make([][]float32, p.channels)
	for c := range dst {
		dst[c] = make([]float32, p.frames)
	}

	block := make([]float32, o.quantum*p.channels)
	pos, empty := 0, 0

	for {
		n, err := src.ReadSamples(block)
		frames := n / p.channels

		// Frames beyond the planned length are dropped.
		keep := min(frames, p.frames-pos)
		for f := range keep {
			for c := range p.channels {
				dst[c][pos+f] = block[f*p.channels+c]
			}
		}
		pos += keep

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}

		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				return nil, fmt.Errorf("%w: %w", ErrRender, io.ErrNoProgress)
			}

			continue
		}
		empty = 0
	}

	if pos < p.frames {
		o.logger.Debug("graph ended early, padding with silence",
			slog.Int("rendered", pos), slog.Int("planned", p.frames))
	}

	out, err := audio.NewBuffer(p.sampleRate, dst...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	o.logger.Debug("render complete",
		slog.Int("channels", p.channels),
		slog.Int("sample_rate", p.sampleRate),
		slog.Int("frames", p.frames),
		slog.Duration("elapsed", time.Since(began)))

	return out, nil
}

// Job is a render in progress.
type Job struct {
	done chan struct{}
	buf  *audio.Buffer
	err  error
}

// Done is closed once the job has finished.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the job finishes or ctx is done. A cancelled ctx only
// stops the wait; the job keeps running and a later Wait gets its result.
func (j *Job) Wait(ctx context.Context) (*audio.Buffer, error) {
	select {
	case <-j.done:
		return j.buf, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
