// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// Samples come out interleaved ([L0, R0, L1, R1, ...] for stereo) at the
// file's channel count and rate. ReadSamples only fills whole frames.
package vorbis
