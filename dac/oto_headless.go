// SPDX-License-Identifier: EPL-2.0

//go:build headless

package dac

func newOtoBackend(StreamConfig, *Adaptor) (Backend, error) {
	return nil, ErrBackendUnavailable
}
