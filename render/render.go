// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"

	"github.com/ik5/audcut/audio"
)

// Renderer turns an extracted segment into the buffer that gets encoded.
type Renderer interface {
	Render(ctx context.Context, buf *audio.Buffer) (*audio.Buffer, error)
}

// Direct returns a copy of its input without running a graph.
type Direct struct{}

func (Direct) Render(ctx context.Context, buf *audio.Buffer) (*audio.Buffer, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	return buf.Clone(), nil
}
