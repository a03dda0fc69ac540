// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbis wraps the reason oggvorbis rejected the input.
var ErrNotVorbis = errors.New("not an Ogg Vorbis stream")
