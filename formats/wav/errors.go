// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("only PCM WAV supported")
	ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32-bit PCM supported")

	// ErrEncode is wrapped by every encoder failure. Given a valid
	// audio.Buffer it only occurs when the result cannot be represented in
	// a RIFF/WAVE header.
	ErrEncode          = errors.New("wav encode failed")
	ErrNilBuffer       = fmt.Errorf("%w: nil or empty buffer", ErrEncode)
	ErrTooManyChannels = fmt.Errorf("%w: channel count exceeds 65535", ErrEncode)
	ErrDataTooLarge    = fmt.Errorf("%w: data exceeds RIFF size limit", ErrEncode)
)
