// SPDX-License-Identifier: EPL-2.0

// Package utils holds the small numeric helpers shared by the engine:
// envelopes, sample conversions, interpolation and the clamped scalar
// wrappers Percentage and Gain.
//
// Every function in this package is safe to call from the audio callback:
// none of them allocate, lock or panic.
package utils
