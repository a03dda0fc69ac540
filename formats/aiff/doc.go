// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) input using
// github.com/go-audio/aiff.
//
// 16, 24 and 32-bit integer PCM with any channel count are supported. The
// underlying decoder needs an io.ReadSeeker; other readers are read into
// memory first.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	buf, err := audio.ReadBuffer(src)
//
// Errors:
//   - ErrNotAiffFile: the input is not an AIFF file
//   - ErrUnsupportedBitDepth: sample size other than 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: missing or invalid COMM information
package aiff
