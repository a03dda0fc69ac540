// SPDX-License-Identifier: EPL-2.0

// Package audcut cuts a time range out of an audio recording and saves it
// as a standalone WAV file.
//
// # Supported Formats
//
// Input is decoded by the formats subpackages:
//   - WAV (PCM 16, 24 and 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16, 24 and 32-bit) via formats/aiff
//
// NewRegistry maps the usual file extensions to those decoders.
//
// Output is always canonical 16-bit PCM RIFF/WAVE with a 44 byte header,
// keeping the channel count and sample rate of the selection.
//
// # Quick Start
//
//	f, _ := os.Open("podcast.mp3")
//	blob, err := audcut.Cut(ctx, mp3.Decoder{}, f, segment.Range{Start: 61, End: 75.25})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("clip.wav", blob.Bytes(), 0o644)
//
// # Pipeline
//
// Cut is a shortcut over the subpackages, which can be used directly:
//
//	buf, _ := audcut.Decode(dec, file)                 // audio.Buffer
//	clip, _ := segment.Extract(buf, rng)                // copy of the selection
//	out, _ := render.Direct{}.Render(ctx, clip)         // or render.NewOffline(...)
//	blob, _ := wav.Encode(out)                          // RIFF/WAVE bytes
//
// The export package wraps the same steps with logging, metrics and
// delivery to a directory or writer.
//
// # Sample Conversion
//
// Float samples are clamped to [-1, 1] and scaled asymmetrically: negative
// values by 32768 and the rest by 32767, truncating toward zero. -1.0 maps
// to -32768 and 1.0 to 32767.
package audcut
