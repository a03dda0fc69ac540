// SPDX-License-Identifier: EPL-2.0

// Package segment cuts a time range out of an audio.Buffer.
//
// A Range is valid when 0 <= Start < End <= duration. The extracted length
// is round((End-Start)*rate) frames, starting at the frame nearest to Start:
//
//	cut, err := segment.Extract(buf, segment.Range{Start: 0.5, End: 1.5})
//	if errors.Is(err, segment.ErrRange) {
//	    // reject the selection
//	}
//
// Every channel of the result is a fresh copy.
package segment
