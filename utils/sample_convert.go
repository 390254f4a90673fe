// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const (
	int16Scale = 32767.0
	uint8Scale = 127.5
)

// Float32ToInt16 converts a sample in [-1,1] to signed 16-bit PCM.
// The value is clamped, scaled by 32767 and rounded; NaN becomes 0.
func Float32ToInt16(x float32) int16 {
	x = Sanitize(x)
	return int16(math.Round(float64(x) * int16Scale))
}

// Float32ToUint8 converts a sample in [-1,1] to unsigned 8-bit PCM with 128
// as the zero line. NaN becomes the zero line.
func Float32ToUint8(x float32) uint8 {
	x = Sanitize(x)
	return uint8(math.Round((float64(x) + 1) * uint8Scale))
}

// Int16ToFloat32 converts signed 16-bit PCM to a float sample.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// IntToFloat32 normalises an integer PCM value of the given bit depth.
// Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var scale float32
	switch bitDepth {
	case 8:
		scale = 128.0
	case 24:
		scale = 8388608.0
	case 32:
		scale = 2147483648.0
	default:
		scale = 32768.0
	}

	return float32(v) / scale
}
