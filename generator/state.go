// SPDX-License-Identifier: MIT
// Package: qpulse/generator
//
// state.go — controller states.

package generator

// State is the controller's registered state.
type State uint8

const (
	// Idle has no command awaiting start.
	Idle State = iota
	// Loaded holds a latched command awaiting start.
	Loaded
	// Active is streaming samples.
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loaded:
		return "loaded"
	case Active:
		return "active"
	}
	return "unknown"
}
