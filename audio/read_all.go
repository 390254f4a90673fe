// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
)

// ReadAll drains src into memory, reading chunk samples at a time. The
// context is checked between reads.
func ReadAll(ctx context.Context, src Source, chunk int) ([]float32, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	ch := src.Channels()
	if ch <= 0 {
		return nil, ErrInvalidChannels
	}
	chunk = max(chunk-chunk%ch, ch)

	out := make([]float32, 0, chunk)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if cap(out)-len(out) < chunk {
			grown := make([]float32, len(out), 2*cap(out)+chunk)
			copy(grown, out)
			out = grown
		}

		n, err := src.ReadSamples(out[len(out) : len(out)+chunk])
		out = out[:len(out)+n]

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("reading source: %w", err)
		}
	}
}
