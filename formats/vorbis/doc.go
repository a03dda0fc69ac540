// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input for the export pipeline using
// github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	buf, err := audio.ReadBuffer(src)
//
// Any channel count and sample rate the stream declares is preserved.
// Streams the library rejects fail with an error wrapping ErrNotVorbis.
package vorbis
