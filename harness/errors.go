// SPDX-License-Identifier: MIT
// Package: qpulse/harness
//
// errors.go — sentinel errors.

package harness

import "errors"

// ErrLengthMismatch indicates the generator streamed a different number of
// samples than the command requested.
var ErrLengthMismatch = errors.New("harness: sample count mismatch")

// ErrNoPulses indicates an empty suite.
var ErrNoPulses = errors.New("harness: no pulses to run")
