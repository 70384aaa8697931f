// SPDX-License-Identifier: MIT
// Package: qpulse/capture
//
// errors.go — sentinel errors.

package capture

import "errors"

// ErrBadRate indicates a non-positive WAV sample rate.
var ErrBadRate = errors.New("capture: sample rate must be positive")

// ErrNotWAV indicates input that is not a RIFF/WAVE file.
var ErrNotWAV = errors.New("capture: not a wav file")

// ErrFormat indicates a WAV file that is not 16-bit stereo PCM.
var ErrFormat = errors.New("capture: expected 16-bit stereo pcm")

// ErrNoResults indicates nothing to render.
var ErrNoResults = errors.New("capture: no results")
