// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio model and the streaming
// primitives used to build processing graphs.
//
// # Buffers
//
// A Buffer holds decoded PCM as one float32 slice per channel together with
// its sample rate:
//
//	buf, err := audio.NewBuffer(44100, left, right)
//	fmt.Println(buf.Channels(), buf.Len(), buf.Duration())
//
// Samples are normalized to [-1.0, 1.0] by convention. Buffers are not
// modified after construction; code that derives audio from a Buffer
// allocates a new one.
//
// # Sources
//
// A Source streams interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders in the formats packages return a Source. ReadBuffer drains a
// Source into a Buffer, and BufferSource turns a Buffer back into a Source:
//
//	src, _ := decoder.Decode(file)
//	buf, err := audio.ReadBuffer(src)
//
//	stream := audio.NewBufferSource(buf)
//
// # Graph stages
//
// Resampler and MonoMixer wrap a Source and are themselves Sources, so they
// chain:
//
//	stage := audio.NewMonoMixer(audio.NewResampler(audio.NewBufferSource(buf), 16000))
//	mono, err := audio.ReadBuffer(stage)
//
// The render package drives these stages when rendering offline.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, format, ok := registry.ForPath("take.wav")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available, possibly together
// with the last samples. Other errors come from the source or from a
// malformed request such as ErrInvalidDstSize.
package audio
