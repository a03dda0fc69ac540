// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input for the export pipeline.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// 16-bit stereo; mono files come out with both channels equal.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3) {
//	    // not an MP3 stream
//	}
//	buf, err := audio.ReadBuffer(src)
//
// Samples are normalized by 32768, so they lie in [-1, 32767/32768].
package mp3
