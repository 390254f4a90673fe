// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"io"
	"sync"
	"testing"

	"github.com/ik5/grainflow/audio"
	"github.com/ik5/grainflow/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDecoder struct{ name string }

func (stubDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSilentSource(8000, 1, 1), nil
}

func TestRegistryCaseInsensitive(t *testing.T) {
	r := audio.NewRegistry()
	r.Register("WAV", stubDecoder{"wav"})

	d, ok := r.Get("wav")
	require.True(t, ok)
	assert.Equal(t, stubDecoder{"wav"}, d)

	_, ok = r.Get(".Wav")
	assert.True(t, ok)

	_, ok = r.Get("mp3")
	assert.False(t, ok)
}

func TestRegistryForPath(t *testing.T) {
	r := audio.NewRegistry()
	r.Register("ogg", stubDecoder{"ogg"})
	r.Register("mp3", stubDecoder{"mp3"})

	d, err := r.ForPath("/music/Track.OGG")
	require.NoError(t, err)
	assert.Equal(t, stubDecoder{"ogg"}, d)

	_, err = r.ForPath("notes.txt")
	assert.ErrorIs(t, err, audio.ErrUnknownFormat)

	_, err = r.ForPath("no-extension")
	assert.ErrorIs(t, err, audio.ErrUnknownFormat)

	assert.Equal(t, []string{"mp3", "ogg"}, r.Formats())
}

func TestRegistryConcurrent(t *testing.T) {
	r := audio.NewRegistry()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			r.Register(name, stubDecoder{name})
			_, _ = r.Get(name)
		}()
	}
	wg.Wait()

	assert.Len(t, r.Formats(), 8)
}
