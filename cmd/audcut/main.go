// SPDX-License-Identifier: EPL-2.0

// Command audcut cuts a time range out of an audio file and saves it as a
// 16-bit PCM WAV file.
//
//	audcut -in talk.mp3 -start 12.5 -end 40 -out clips/ -name answer.wav
//	audcut -in song.ogg -start 60 -out - > hook.wav
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/ik5/audcut"
	"github.com/ik5/audcut/export"
	"github.com/ik5/audcut/internal/config"
	"github.com/ik5/audcut/internal/metrics"
	"github.com/ik5/audcut/render"
	"github.com/ik5/audcut/segment"
)

const stdoutDir = "-"

var errUsage = errors.New("usage error")

type options struct {
	in         string
	start      float64
	end        float64 // negative means the end of the recording
	configPath string

	cfg *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "audcut:", err)
		}
		stop()
		os.Exit(1)
	}
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("audcut", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.in, "in", "", "input audio file (wav, mp3, ogg, aiff)")
	fs.Float64Var(&opts.start, "start", 0, "selection start in seconds")
	fs.Float64Var(&opts.end, "end", -1, "selection end in seconds (default: end of recording)")
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")

	out := fs.String("out", "", `output directory, or "-" for stdout`)
	name := fs.String("name", "", "output file name")
	mono := fs.Bool("mono", false, "downmix to one channel")
	rate := fs.Int("rate", 0, "output sample rate in Hz (default: input rate)")
	level := fs.String("log-level", "", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.in == "" {
		fs.Usage()
		return nil, fmt.Errorf("%w: -in is required", errUsage)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	// Flags given on the command line win over the configuration file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output.Dir = *out
		case "name":
			cfg.Output.Filename = *name
		case "mono":
			cfg.Render.Mono = *mono
		case "rate":
			cfg.Render.SampleRate = *rate
		case "log-level":
			cfg.Logging.Level = *level
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts.cfg = cfg

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	cfg := opts.cfg

	logger := initLogger(cfg.Logging, stderr)

	renderOpts := []render.Option{
		render.WithQuantum(cfg.Render.Quantum),
		render.WithLogger(logger),
	}
	if cfg.Render.Mono {
		renderOpts = append(renderOpts, render.WithMono())
	}
	if cfg.Render.SampleRate > 0 {
		renderOpts = append(renderOpts, render.WithSampleRate(cfg.Render.SampleRate))
	}

	renderer, err := render.NewOffline(renderOpts...)
	if err != nil {
		return err
	}

	var deliverer export.Deliverer = export.Dir(cfg.Output.Dir)
	if cfg.Output.Dir == stdoutDir {
		deliverer = export.NewWriter(stdout)
	}

	exporterOpts := []export.Option{
		export.WithRegistry(audcut.NewRegistry()),
		export.WithLogger(logger),
	}

	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		exporterOpts = append(exporterOpts, export.WithMetrics(metrics.NewMetrics(registry, cfg.Metrics.Namespace)))
	}

	exporter := export.New(renderer, deliverer, exporterOpts...)

	err = cut(ctx, exporter, opts, logger)

	if registry != nil && logger.Enabled(ctx, slog.LevelDebug) {
		if dumpErr := dumpMetrics(registry, stderr); dumpErr != nil {
			logger.Warn("failed to write metrics", slog.String("error", dumpErr.Error()))
		}
	}

	return err
}

func cut(ctx context.Context, exporter *export.Exporter, opts *options, logger *slog.Logger) error {
	f, err := os.Open(opts.in)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := exporter.Load(ctx, filepath.Base(opts.in), f)
	if err != nil {
		return err
	}

	rng := segment.Range{Start: opts.start, End: opts.end}
	if rng.End < 0 {
		rng.End = buf.Duration()
	}

	res, err := exporter.Export(ctx, buf, rng, opts.cfg.Output.Filename)
	if err != nil {
		return err
	}

	dest := stdoutDir
	if opts.cfg.Output.Dir != stdoutDir {
		dest = filepath.Join(opts.cfg.Output.Dir, res.Filename)
	}

	logger.Info("saved",
		slog.String("path", dest),
		slog.String("range", rng.String()),
		slog.Int("bytes", res.Size))

	return nil
}

func dumpMetrics(reg *prometheus.Registry, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

// initLogger builds the command logger. Logs go to stderr so stdout stays
// free for WAV output.
func initLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", "audcut"))
}
