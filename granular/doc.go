// SPDX-License-Identifier: EPL-2.0

// Package granular implements a real-time granular synthesizer.
//
// A Synthesizer plays many short, overlapping fragments (grains) of a shared
// sample Buffer. Every call to NextFrame runs one cycle:
//
//  1. each output channel may spawn a grain at a random position inside the
//     selected region of the buffer, as decided by the SpawnPolicy
//  2. every live grain reads its buffer position (linearly interpolated),
//     scales it by a triangle envelope and adds it to its channel; a buffer
//     with a different channel count is mapped onto the engine channels
//     with the Downmix strategy first
//  3. grains that have played all of their frames are retired
//  4. the channel frame is downmixed when the caller asks for a different
//     channel count
//
// Parameters are published copy-on-write and the buffer is swapped
// atomically, so the control side may call the setters while the audio side
// calls NextFrame. NextFrame itself never locks or allocates.
package granular
