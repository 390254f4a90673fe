// SPDX-License-Identifier: EPL-2.0

package granular

import "errors"

var (
	ErrInvalidChannels   = errors.New("buffer channel count must be positive")
	ErrTooManyChannels   = errors.New("buffer has more channels than the synthesizer supports")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
