// SPDX-License-Identifier: EPL-2.0

// Package render prepares an extracted segment for encoding.
//
// Direct hands back a copy of the segment. Offline pushes the segment
// through a graph of audio stages into a destination buffer whose shape is
// fixed before rendering starts:
//
//	r, err := render.NewOffline(render.WithMono(), render.WithSampleRate(22050))
//	job := r.Start(segment)
//	out, err := job.Wait(ctx)
//
// The destination always has the planned number of frames. A graph that
// produces fewer leaves trailing silence and any extra frames are dropped.
// Without options the output equals the input sample for sample.
//
// Rendering runs on its own goroutine and cannot be aborted. Cancelling the
// context passed to Wait returns ctx.Err() to that caller only.
package render
