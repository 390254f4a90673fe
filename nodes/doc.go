// SPDX-License-Identifier: EPL-2.0

// Package nodes provides the built-in graph.Node kinds.
//
// Sources: Constant, Sine, Granular.
// Effects: Multiply, Gain, PassThrough, Downmix.
// Sinks:   Record, Output.
//
// Parameters that the control side may change while the graph runs are
// stored atomically; everything else is owned by the audio side.
package nodes
