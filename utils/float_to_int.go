// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 quantizes a normalized sample to signed 16-bit PCM.
//
// The sample is clamped to [-1, 1] and scaled asymmetrically: negative values
// by 32768 and non-negative values by 32767, so -1 maps to math.MinInt16 and
// 1 maps to math.MaxInt16. The scaled value is truncated toward zero.
// NaN quantizes to 0.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}

	v := float64(x)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	if v < 0 {
		return int16(v * 0x8000)
	}

	return int16(v * 0x7fff)
}
