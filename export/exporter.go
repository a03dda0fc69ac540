// SPDX-License-Identifier: EPL-2.0

package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/wav"
	"github.com/ik5/audcut/internal/metrics"
	"github.com/ik5/audcut/render"
	"github.com/ik5/audcut/segment"
)

// DefaultFilename names an export when the caller gives no name.
const DefaultFilename = "cut-audio.wav"

// Result describes a delivered export.
type Result struct {
	ID         string
	Filename   string
	Frames     int
	Channels   int
	SampleRate int
	Size       int // bytes delivered

	// Superseded is set when another Export started while this one was
	// running. The file was still delivered.
	Superseded bool
}

type Option func(*Exporter)

func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Exporter) { e.metrics = m }
}

// WithRegistry sets the decoders used by Load.
func WithRegistry(r *audio.Registry) Option {
	return func(e *Exporter) {
		if r != nil {
			e.registry = r
		}
	}
}

// Exporter turns a selection of a decoded recording into a delivered WAV
// file. It is safe for concurrent use and retains no audio between calls.
type Exporter struct {
	renderer  render.Renderer
	deliverer Deliverer
	registry  *audio.Registry
	logger    *slog.Logger
	metrics   *metrics.Metrics

	generation atomic.Uint64
}

// New creates an Exporter. A nil renderer means render.Direct.
func New(renderer render.Renderer, deliverer Deliverer, opts ...Option) *Exporter {
	if renderer == nil {
		renderer = render.Direct{}
	}

	e := &Exporter{
		renderer:  renderer,
		deliverer: deliverer,
		registry:  audio.NewRegistry(),
		logger:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Load decodes r completely, choosing the decoder from the extension of
// name.
func (e *Exporter) Load(ctx context.Context, name string, r io.Reader) (*audio.Buffer, error) {
	dec, format, ok := e.registry.ForPath(name)
	if !ok {
		e.metrics.RecordDecode("unknown", metrics.ResultDecode)
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnknownFormat, name, strings.Join(e.registry.Formats(), ", "))
	}

	buf, err := decodeAll(ctx, dec, r)
	if err != nil {
		e.metrics.RecordDecode(format, metrics.ResultDecode)
		e.logger.Warn("decode failed", slog.String("name", name), slog.String("error", err.Error()))

		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}

	e.metrics.RecordDecode(format, metrics.ResultOK)
	e.logger.Info("decoded",
		slog.String("name", name),
		slog.String("format", format),
		slog.Int("channels", buf.Channels()),
		slog.Int("sample_rate", buf.SampleRate()),
		slog.Float64("duration", buf.Duration()))

	return buf, nil
}

func decodeAll(ctx context.Context, dec audio.Decoder, r io.Reader) (*audio.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return audio.ReadBuffer(src)
}

// Export extracts rng from buf, renders it, encodes it as 16-bit PCM WAV and
// delivers it under filename. Nothing is delivered when an earlier step
// fails.
func (e *Exporter) Export(ctx context.Context, buf *audio.Buffer, rng segment.Range, filename string) (Result, error) {
	began := time.Now()
	gen := e.generation.Add(1)

	if filename == "" {
		filename = DefaultFilename
	}

	res := Result{ID: uuid.NewString(), Filename: filename}
	log := e.logger.With(slog.String("export_id", res.ID))
	log.Debug("export requested", slog.String("range", rng.String()), slog.String("filename", filename))

	fail := func(result string, err error) (Result, error) {
		e.metrics.RecordExport(result, time.Since(began).Seconds(), 0)
		log.Warn("export failed", slog.String("result", result), slog.String("error", err.Error()))

		return Result{}, err
	}

	cut, err := segment.Extract(buf, rng)
	if err != nil {
		return fail(metrics.ResultRange, err)
	}

	rendered, err := e.renderer.Render(ctx, cut)
	if err != nil {
		if !errors.Is(err, ErrRender) {
			err = fmt.Errorf("%w: %w", ErrRender, err)
		}

		return fail(metrics.ResultRender, err)
	}

	blob, err := wav.Encode(rendered)
	if err != nil {
		return fail(metrics.ResultEncode, err)
	}

	if e.deliverer == nil {
		return fail(metrics.ResultDeliver, ErrNoDeliverer)
	}

	if err := e.deliverer.Deliver(ctx, filename, blob); err != nil {
		if !errors.Is(err, ErrDeliver) {
			err = fmt.Errorf("%w: %w", ErrDeliver, err)
		}

		return fail(metrics.ResultDeliver, err)
	}

	res.Frames = rendered.Len()
	res.Channels = rendered.Channels()
	res.SampleRate = rendered.SampleRate()
	res.Size = blob.Len()
	res.Superseded = e.generation.Load() != gen

	elapsed := time.Since(began)
	e.metrics.RecordExport(metrics.ResultOK, elapsed.Seconds(), res.Size)

	log.Info("export delivered",
		slog.String("filename", filename),
		slog.Int("frames", res.Frames),
		slog.Int("channels", res.Channels),
		slog.Int("sample_rate", res.SampleRate),
		slog.Int("bytes", res.Size),
		slog.Bool("superseded", res.Superseded),
		slog.Duration("elapsed", elapsed))

	return res, nil
}
