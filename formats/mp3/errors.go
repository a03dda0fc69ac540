// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3 wraps the reason go-mp3 rejected the input.
var ErrNotMP3 = errors.New("not a decodable MP3 stream")
