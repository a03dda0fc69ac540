// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"errors"
	"fmt"
)

var (
	// ErrRange is wrapped by every selection error.
	ErrRange = errors.New("invalid selection")

	ErrNoSource    = fmt.Errorf("%w: no decoded audio", ErrRange)
	ErrEmptyRange  = fmt.Errorf("%w: empty range", ErrRange)
	ErrOutOfBounds = fmt.Errorf("%w: bound outside the recording", ErrRange)
)
