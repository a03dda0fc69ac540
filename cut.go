// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/aiff"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/vorbis"
	"github.com/ik5/audcut/formats/wav"
	"github.com/ik5/audcut/render"
	"github.com/ik5/audcut/segment"
)

// NewRegistry returns a registry with every decoder this module ships,
// keyed by file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Decode reads all of r with dec into a Buffer.
func Decode(dec audio.Decoder, r io.Reader) (*audio.Buffer, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	return audio.ReadBuffer(src)
}

// Cut decodes r, keeps the frames selected by rng and returns them as a
// 16-bit PCM WAV file with the channel count and sample rate of the input.
//
// Example:
//
//	f, _ := os.Open("interview.mp3")
//	blob, err := audcut.Cut(ctx, mp3.Decoder{}, f, segment.Range{Start: 30, End: 95.5})
//	os.WriteFile("answer.wav", blob.Bytes(), 0o644)
func Cut(ctx context.Context, dec audio.Decoder, r io.Reader, rng segment.Range) (wav.Blob, error) {
	return CutWith(ctx, render.Direct{}, dec, r, rng)
}

// CutWith is Cut with the selection passed through renderer before
// encoding.
func CutWith(ctx context.Context, renderer render.Renderer, dec audio.Decoder, r io.Reader, rng segment.Range) (wav.Blob, error) {
	buf, err := Decode(dec, r)
	if err != nil {
		return wav.Blob{}, err
	}

	cut, err := segment.Extract(buf, rng)
	if err != nil {
		return wav.Blob{}, err
	}

	out, err := renderer.Render(ctx, cut)
	if err != nil {
		return wav.Blob{}, fmt.Errorf("%w", err)
	}

	return wav.Encode(out)
}
