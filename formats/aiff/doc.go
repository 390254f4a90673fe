// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files into an audio.Source using
// github.com/go-audio/aiff.
//
// 8, 16, 24 and 32 bit integer PCM are accepted. AIFF-C is not.
//
// Errors:
//   - ErrNotAiffFile: the input has no valid FORM/AIFF header
//   - ErrUnsupportedDepth: the bit depth is not one of the above
//   - ErrUnsupportedLayout: the COMM chunk carries no usable rate or channels
package aiff
