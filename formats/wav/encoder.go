// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
)

// Blob is a complete, immutable RIFF/WAVE file.
type Blob struct {
	data []byte
}

// Len is the file size in bytes.
func (b Blob) Len() int { return len(b.data) }

// Bytes returns a copy of the file contents.
func (b Blob) Bytes() []byte {
	return bytes.Clone(b.data)
}

// Reader returns a reader over the file contents.
func (b Blob) Reader() *bytes.Reader {
	return bytes.NewReader(b.data)
}

// WriteTo writes the whole file to w.
func (b Blob) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	if err != nil {
		return int64(n), fmt.Errorf("%w", err)
	}

	return int64(n), nil
}

// Encode serializes buf as 16-bit PCM. The result is exactly
// 44 + Len*Channels*2 bytes: samples are interleaved frame by frame in
// channel order and quantized with utils.Float32ToInt16.
func Encode(buf *audio.Buffer) (Blob, error) {
	h, err := HeaderFor(buf)
	if err != nil {
		return Blob{}, err
	}

	out := make([]byte, h.FileSize())
	c := h.put(out, 0)

	channels := buf.Channels()
	for f := range buf.Len() {
		for ch := range channels {
			c = c.putInt16(out, utils.Float32ToInt16(buf.Channel(ch)[f]))
		}
	}

	if int(c) != len(out) {
		return Blob{}, fmt.Errorf("%w: wrote %d of %d bytes", ErrEncode, c, len(out))
	}

	return Blob{data: out}, nil
}

// framesPerChunk bounds the memory EncodeTo uses per write.
const framesPerChunk = 4096

// EncodeTo streams the same bytes Encode produces to w without holding the
// whole file in memory. It returns the number of bytes written.
func EncodeTo(w io.Writer, buf *audio.Buffer) (int64, error) {
	h, err := HeaderFor(buf)
	if err != nil {
		return 0, err
	}

	header := make([]byte, HeaderSize)
	h.put(header, 0)

	written, err := w.Write(header)
	total := int64(written)
	if err != nil {
		return total, fmt.Errorf("%w", err)
	}

	channels := buf.Channels()
	chunk := make([]byte, min(buf.Len(), framesPerChunk)*channels*bytesPerSample)

	for start := 0; start < buf.Len(); start += framesPerChunk {
		end := min(start+framesPerChunk, buf.Len())

		c := cursor(0)
		for f := start; f < end; f++ {
			for ch := range channels {
				c = c.putInt16(chunk, utils.Float32ToInt16(buf.Channel(ch)[f]))
			}
		}

		n, err := w.Write(chunk[:c])
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}

	return total, nil
}
