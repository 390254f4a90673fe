// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"sync"
	"time"
)

// HeadlessBackend pulls the Adaptor in real time without a device. Each
// tick renders one period of frames and hands it to the sink, if any.
type HeadlessBackend struct {
	a      *Adaptor
	period time.Duration
	buf    []float32
	sink   func([]float32) error

	mu      sync.Mutex
	started bool
	closed  bool
	stop    chan struct{}
	done    chan struct{}
	err     error
}

// NewHeadlessBackend paces reads of a at sampleRate, one period per tick.
func NewHeadlessBackend(a *Adaptor, sampleRate int, period time.Duration) *HeadlessBackend {
	frames := max(1, int(period*time.Duration(sampleRate)/time.Second))
	return &HeadlessBackend{
		a:      a,
		period: period,
		buf:    make([]float32, frames*a.Channels()),
	}
}

func (h *HeadlessBackend) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	if h.started {
		return ErrAlreadyStarted
	}
	h.started = true
	h.stop = make(chan struct{})
	h.done = make(chan struct{})

	go h.run()
	return nil
}

func (h *HeadlessBackend) run() {
	defer close(h.done)

	ticker := time.NewTicker(h.period)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			if err := h.Tick(); err != nil {
				h.mu.Lock()
				h.err = err
				h.mu.Unlock()
				return
			}
		}
	}
}

// Tick renders one period immediately.
func (h *HeadlessBackend) Tick() error {
	n := h.a.Render(h.buf)
	if h.sink == nil {
		return nil
	}
	return h.sink(h.buf[:n])
}

// Err is the sink error that stopped the pump, if any.
func (h *HeadlessBackend) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Close stops the pump and waits for it. It is safe to call more than once.
func (h *HeadlessBackend) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	started := h.started
	h.mu.Unlock()

	if started {
		close(h.stop)
		<-h.done
	}
	return h.Err()
}
