// SPDX-License-Identifier: EPL-2.0

package export

import (
	"errors"
	"fmt"

	"github.com/ik5/audcut/formats/wav"
	"github.com/ik5/audcut/render"
	"github.com/ik5/audcut/segment"
)

// Failure classes of Load and Export. Every returned error matches exactly
// one of them with errors.Is.
var (
	ErrDecode  = errors.New("decode failed")
	ErrRange   = segment.ErrRange
	ErrRender  = render.ErrRender
	ErrEncode  = wav.ErrEncode
	ErrDeliver = errors.New("delivery failed")
)

var (
	ErrUnknownFormat   = fmt.Errorf("%w: unknown format", ErrDecode)
	ErrNoDeliverer     = fmt.Errorf("%w: no deliverer", ErrDeliver)
	ErrInvalidFilename = fmt.Errorf("%w: invalid filename", ErrDeliver)
)
