// SPDX-License-Identifier: MIT
// Package: qpulse/capture
//
// wav.go — I/Q traces as stereo WAV.

package capture

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/katalvlaran/qpulse/drag"
	"github.com/katalvlaran/qpulse/fixed"
)

const (
	wavBitDepth = 16
	wavChannels = 2
	wavPCM      = 1 // WAVE_FORMAT_PCM
)

// WriteWAV encodes samples as 16-bit stereo PCM at rate frames per second.
func WriteWAV(w io.WriteSeeker, samples []drag.Sample, rate int) error {
	if rate <= 0 {
		return ErrBadRate
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: wavChannels, SampleRate: rate},
		Data:           make([]int, 0, wavChannels*len(samples)),
		SourceBitDepth: wavBitDepth,
	}
	for _, s := range samples {
		buf.Data = append(buf.Data, int(s.I), int(s.Q))
	}

	enc := wav.NewEncoder(w, rate, wavBitDepth, wavChannels, wavPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("capture: wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("capture: wav: %w", err)
	}
	return nil
}

// ReadWAV decodes a file written by WriteWAV and returns the samples and
// the sample rate.
func ReadWAV(r io.ReadSeeker) ([]drag.Sample, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWAV
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("capture: wav: %w", err)
	}
	if dec.NumChans != wavChannels || dec.BitDepth != wavBitDepth {
		return nil, 0, fmt.Errorf("capture: %d channels, %d bits: %w", dec.NumChans, dec.BitDepth, ErrFormat)
	}

	out := make([]drag.Sample, 0, len(buf.Data)/wavChannels)
	for i := 0; i+1 < len(buf.Data); i += wavChannels {
		out = append(out, drag.Sample{
			I: fixed.SaturateSQ1_15(int64(buf.Data[i])),
			Q: fixed.SaturateSQ1_15(int64(buf.Data[i+1])),
		})
	}
	return out, int(dec.SampleRate), nil
}
