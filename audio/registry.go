// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry maps format keys ("wav", "mp3", "ogg", ...) to decoders.
// Keys are case-insensitive. It is safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

func normalizeFormat(format string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
}

// Register binds d to format, replacing any previous decoder.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// ForPath picks the decoder registered for the file extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := normalizeFormat(filepath.Ext(path))
	if d, ok := r.Get(ext); ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
