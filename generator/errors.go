// SPDX-License-Identifier: MIT
// Package: qpulse/generator
//
// errors.go — sentinel errors for the convenience drivers.
//
// Tick itself never fails: an invalid command surfaces on the Err output.
// Only Run and friends, which drive whole sessions, return errors.

package generator

import "errors"

// ErrBusy indicates Run was called while a session is streaming.
var ErrBusy = errors.New("generator: session in progress")

// ErrRejected indicates start was refused because the latched command is
// invalid. Run wraps it together with the command's validation error.
var ErrRejected = errors.New("generator: command rejected")
