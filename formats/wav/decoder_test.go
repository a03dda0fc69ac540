// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/internal/audiotest"
	"github.com/ik5/audcut/utils"
)

// mockPCMReader hands out a fixed slice of ints through PCMBuffer.
type mockPCMReader struct {
	data []int
	pos  int
	err  error
}

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	n := copy(buf.Data, m.data[m.pos:])
	m.pos += n

	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockPCMReader{data: []int{0, 16384, -16384, 32767, -32768}},
		sampleRate: 8000,
		channels:   1,
		scale:      1.0 / 32768,
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 1 || err != io.EOF || dst[0] != -1 {
		t.Errorf("ReadSamples() = %d, %v, %v; want 1, io.EOF, -1", n, err, dst[0])
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("truncated chunk")
	src := &source{dec: &mockPCMReader{err: readErr}, channels: 1, scale: 1}

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, readErr) {
		t.Errorf("ReadSamples() error = %v, want %v", err, readErr)
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
	}{
		{"mono 8k", 8000, 1},
		{"stereo 44.1k", 44100, 2},
		{"quad 48k", 48000, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := mustBuffer(t, tt.sampleRate,
				audiotest.Planar(tt.channels, 3000, audiotest.Sine(tt.sampleRate, 997))...)

			blob, err := Encode(original)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			// io.Reader without Seek exercises the buffering path.
			src, err := Decoder{}.Decode(io.MultiReader(blob.Reader()))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			decoded, err := audio.ReadBuffer(src)
			if err != nil {
				t.Fatalf("ReadBuffer() error = %v", err)
			}

			if decoded.Channels() != tt.channels || decoded.SampleRate() != tt.sampleRate || decoded.Len() != original.Len() {
				t.Fatalf("decoded shape = (%d ch, %d Hz, %d frames), want (%d, %d, %d)",
					decoded.Channels(), decoded.SampleRate(), decoded.Len(),
					tt.channels, tt.sampleRate, original.Len())
			}

			for c := range tt.channels {
				for i, x := range original.Channel(c) {
					q := float64(decoded.Channel(c)[i]) * 32768
					assertWithinOneStep(t, x, q)
				}
			}
		})
	}
}

// A standard decoder must read the file back to the quantized values.
func TestEncode_GoAudioDecoder(t *testing.T) {
	t.Parallel()

	original := mustBuffer(t, 22050, audiotest.Planar(2, 2048, audiotest.Sine(22050, 440))...)

	blob, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	dec := gowav.NewDecoder(blob.Reader())
	if !dec.IsValidFile() {
		t.Fatalf("go-audio rejected the file: %v", dec.Err())
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}

	if pcm.Format.NumChannels != 2 || pcm.Format.SampleRate != 22050 {
		t.Errorf("format = %+v, want 2 channels at 22050 Hz", *pcm.Format)
	}
	if dec.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", dec.BitDepth)
	}
	if len(pcm.Data) != 2*2048 {
		t.Fatalf("len(Data) = %d, want %d", len(pcm.Data), 2*2048)
	}

	for i, v := range pcm.Data {
		x := original.Channel(i % 2)[i/2]
		if want := int(utils.Float32ToInt16(x)); v != want {
			t.Fatalf("sample %d = %d, want %d", i, v, want)
		}
		assertWithinOneStep(t, x, float64(v))
	}
}

func assertWithinOneStep(t *testing.T, x float32, q float64) {
	t.Helper()

	v := math.Max(-1, math.Min(1, float64(x)))
	scale := 32767.0
	if v < 0 {
		scale = 32768.0
	}

	if diff := math.Abs(q - v*scale); diff >= 1 {
		t.Fatalf("sample %v decoded to %v, %v steps away", x, q, diff)
	}
}

func TestDecoder_NotWav(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"text":  []byte("This is definitely not a RIFF file, it is just text padding."),
		"empty": {},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(in)); !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
			}
		})
	}
}

// rawWAV builds a canonical header with arbitrary format fields.
func rawWAV(format, channels uint16, rate uint32, bits uint16, data []byte) []byte {
	blockAlign := channels * bits / 8
	out := make([]byte, HeaderSize+len(data))

	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+len(data)))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], format)
	binary.LittleEndian.PutUint16(out[22:], channels)
	binary.LittleEndian.PutUint32(out[24:], rate)
	binary.LittleEndian.PutUint32(out[28:], rate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(out[32:], blockAlign)
	binary.LittleEndian.PutUint16(out[34:], bits)
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(len(data)))
	copy(out[44:], data)

	return out
}

func TestDecoder_24Bit(t *testing.T) {
	t.Parallel()

	// Two mono frames: +half scale and -full scale.
	data := []byte{0x00, 0x00, 0x40, 0x00, 0x00, 0x80}
	src, err := Decoder{}.Decode(bytes.NewReader(rawWAV(1, 1, 8000, 24, data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := audio.ReadBuffer(src)
	if err != nil {
		t.Fatalf("ReadBuffer() error = %v", err)
	}

	if buf.Len() != 2 || buf.Channel(0)[0] != 0.5 || buf.Channel(0)[1] != -1 {
		t.Errorf("decoded = %v, want [0.5 -1]", buf.Channel(0))
	}
}

func TestDecoder_RejectsUnsupported(t *testing.T) {
	t.Parallel()

	tests := map[string][]byte{
		"8-bit PCM":   rawWAV(1, 1, 8000, 8, make([]byte, 64)),
		"IEEE float":  rawWAV(3, 1, 8000, 32, make([]byte, 64)),
		"mu-law G711": rawWAV(7, 1, 8000, 8, make([]byte, 64)),
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(in)); err == nil {
				t.Error("Decode() error = nil, want rejection")
			}
		})
	}
}
