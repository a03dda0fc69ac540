// SPDX-License-Identifier: EPL-2.0

// Package export runs the cut pipeline for a user's selection and hands the
// resulting WAV file to a Deliverer.
//
//	e := export.New(render.Direct{}, export.Dir("/tmp"),
//	    export.WithRegistry(audcut.NewRegistry()),
//	    export.WithLogger(logger))
//
//	buf, err := e.Load(ctx, "talk.mp3", file)
//	res, err := e.Export(ctx, buf, segment.Range{Start: 12.5, End: 40}, "")
//
// # Errors
//
// Failures fall in one of five classes, checked with errors.Is:
// ErrDecode, ErrRange, ErrRender, ErrEncode and ErrDeliver. The Deliverer
// is only called after the file was encoded successfully.
//
// # Concurrency
//
// Exports may overlap. Each one runs to completion and delivers its file.
// When a newer Export starts before an older one finishes, the older
// Result has Superseded set so a caller showing progress can ignore it.
package export
