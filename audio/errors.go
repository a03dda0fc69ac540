// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoChannels        = errors.New("buffer needs at least one channel")
	ErrChannelLength     = errors.New("channels must have equal length")
	ErrInvalidSource     = errors.New("source reports invalid format")
)
