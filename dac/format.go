// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/ik5/grainflow/utils"
)

// SampleFormat is the native sample representation of an output stream.
type SampleFormat int

const (
	FormatFloat32LE SampleFormat = iota
	FormatSignedInt16LE
	FormatUnsignedInt8
)

var formatNames = [...]string{
	FormatFloat32LE:     "f32",
	FormatSignedInt16LE: "s16",
	FormatUnsignedInt8:  "u8",
}

func (f SampleFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("SampleFormat(%d)", int(f))
	}
	return formatNames[f]
}

func (f SampleFormat) Valid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

// BytesPerSample is the encoded size of one sample, or 0 for an invalid format.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case FormatFloat32LE:
		return 4
	case FormatSignedInt16LE:
		return 2
	case FormatUnsignedInt8:
		return 1
	}
	return 0
}

// Encode writes x into dst, which must hold BytesPerSample bytes.
// x is sanitized first: NaN is silence and the range is clamped to [-1, 1].
func (f SampleFormat) Encode(dst []byte, x float32) {
	switch f {
	case FormatFloat32LE:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(utils.Sanitize(x)))
	case FormatSignedInt16LE:
		binary.LittleEndian.PutUint16(dst, uint16(utils.Float32ToInt16(x)))
	case FormatUnsignedInt8:
		dst[0] = utils.Float32ToUint8(x)
	}
}

// ParseSampleFormat accepts "f32", "s16" and "u8" plus a few common aliases.
func ParseSampleFormat(name string) (SampleFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "f32", "float32", "f32le":
		return FormatFloat32LE, nil
	case "s16", "int16", "s16le":
		return FormatSignedInt16LE, nil
	case "u8", "uint8":
		return FormatUnsignedInt8, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}
