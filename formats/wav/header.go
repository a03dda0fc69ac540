// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audcut/audio"
)

const (
	// HeaderSize is the size of the RIFF, fmt and data chunk headers of a
	// canonical PCM file.
	HeaderSize = 44

	// ContentType is the media type of an encoded file.
	ContentType = "audio/wav"

	formatPCM      = 1
	fmtChunkSize   = 16
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
)

// Header holds the fields of a canonical 16-bit PCM header.
type Header struct {
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32 // Subchunk2Size
}

// ChunkSize is the RIFF chunk size: total file length minus 8.
func (h Header) ChunkSize() uint32 {
	return HeaderSize - 8 + h.DataSize
}

// FileSize is the total length of the encoded file in bytes.
func (h Header) FileSize() int {
	return HeaderSize + int(h.DataSize)
}

// HeaderFor computes the header describing buf.
func HeaderFor(buf *audio.Buffer) (Header, error) {
	if buf == nil || buf.Channels() == 0 {
		return Header{}, ErrNilBuffer
	}

	channels := uint64(buf.Channels())
	if channels > math.MaxUint16 {
		return Header{}, ErrTooManyChannels
	}

	rate := uint64(buf.SampleRate())
	byteRate := rate * channels * bytesPerSample
	dataSize := uint64(buf.Len()) * channels * bytesPerSample

	if byteRate > math.MaxUint32 || dataSize > math.MaxUint32-(HeaderSize-8) {
		return Header{}, ErrDataTooLarge
	}

	return Header{
		NumChannels:   uint16(channels),
		SampleRate:    uint32(rate),
		ByteRate:      uint32(byteRate),
		BlockAlign:    uint16(channels * bytesPerSample),
		BitsPerSample: bitsPerSample,
		DataSize:      uint32(dataSize),
	}, nil
}

// cursor is a write offset into a fixed size byte slice. Each put returns
// the cursor advanced past the bytes it wrote.
type cursor int

func (c cursor) putTag(b []byte, tag string) cursor {
	copy(b[c:c+4], tag)
	return c + 4
}

func (c cursor) putUint16(b []byte, v uint16) cursor {
	binary.LittleEndian.PutUint16(b[c:], v)
	return c + 2
}

func (c cursor) putUint32(b []byte, v uint32) cursor {
	binary.LittleEndian.PutUint32(b[c:], v)
	return c + 4
}

func (c cursor) putInt16(b []byte, v int16) cursor {
	return c.putUint16(b, uint16(v))
}

// put writes the 44 header bytes at the cursor.
func (h Header) put(b []byte, c cursor) cursor {
	c = c.putTag(b, "RIFF")
	c = c.putUint32(b, h.ChunkSize())
	c = c.putTag(b, "WAVE")

	c = c.putTag(b, "fmt ")
	c = c.putUint32(b, fmtChunkSize)
	c = c.putUint16(b, formatPCM)
	c = c.putUint16(b, h.NumChannels)
	c = c.putUint32(b, h.SampleRate)
	c = c.putUint32(b, h.ByteRate)
	c = c.putUint16(b, h.BlockAlign)
	c = c.putUint16(b, h.BitsPerSample)

	c = c.putTag(b, "data")
	c = c.putUint32(b, h.DataSize)

	return c
}
