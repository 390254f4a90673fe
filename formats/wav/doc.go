// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// The Decoder accepts integer PCM at 8, 16, 24 or 32 bits with any channel
// count and sample rate, and returns an audio.Source of float32 samples in
// [-1, 1]:
//
//	f, _ := os.Open("audio.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The Writer produces 16-bit PCM files from float samples. Since the WAV
// header carries the data size, the target must be an io.WriteSeeker:
//
//	out, _ := os.Create("render.wav")
//	w, _ := wav.NewWriter(out, 48000, 2)
//	_ = w.WriteFloat32(frames)
//	_ = w.Close()
package wav
