// SPDX-License-Identifier: EPL-2.0

package dac

import "errors"

var (
	ErrUnsupportedFormat  = errors.New("unsupported sample format")
	ErrInvalidConfig      = errors.New("invalid stream config")
	ErrUnknownHost        = errors.New("unknown audio host")
	ErrBackendUnavailable = errors.New("audio backend unavailable in this build")
	ErrAlreadyStarted     = errors.New("stream already started")
	ErrClosed             = errors.New("stream closed")
)
