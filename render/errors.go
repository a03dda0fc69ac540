// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrRender is wrapped by every error a Renderer returns.
	ErrRender = errors.New("render failed")

	ErrNilBuffer     = fmt.Errorf("%w: no input buffer", ErrRender)
	ErrInvalidOption = fmt.Errorf("%w: invalid option", ErrRender)
	ErrChannelCount  = fmt.Errorf("%w: graph changed channel count", ErrRender)
)
