// SPDX-License-Identifier: EPL-2.0

// Package wav encodes audio buffers as 16-bit PCM RIFF/WAVE files and decodes
// PCM WAV input.
//
// # Encoding
//
// Encode serializes an audio.Buffer into a Blob:
//
//	blob, err := wav.Encode(buf)
//	f, _ := os.Create("cut-audio.wav")
//	blob.WriteTo(f)
//
// The output is always the canonical 44-byte header followed by the sample
// data, with no other chunks:
//
//	offset  field          value
//	0       ChunkID        "RIFF"
//	4       ChunkSize      file length - 8
//	8       Format         "WAVE"
//	12      Subchunk1ID    "fmt "
//	16      Subchunk1Size  16
//	20      AudioFormat    1 (PCM)
//	22      NumChannels    channel count
//	24      SampleRate     sample rate
//	28      ByteRate       SampleRate * NumChannels * 2
//	32      BlockAlign     NumChannels * 2
//	34      BitsPerSample  16
//	36      Subchunk2ID    "data"
//	40      Subchunk2Size  frames * NumChannels * 2
//	44      data           interleaved little-endian int16
//
// Samples are clamped to [-1, 1] and scaled by 32768 when negative and by
// 32767 otherwise, then truncated toward zero. -1.0 encodes to -32768 and
// 1.0 to 32767.
//
// EncodeTo writes the same bytes to an io.Writer in fixed size chunks.
//
// # Decoding
//
// Decoder uses github.com/go-audio/wav and accepts 16, 24 and 32-bit integer
// PCM with any channel count:
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadBuffer(src)
//
// Errors: ErrNotWavFile, ErrUnsupportedFormat, ErrUnsupportedBitDepth.
// Encoder failures wrap ErrEncode.
package wav
