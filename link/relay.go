// SPDX-License-Identifier: MIT
// Package: qpulse/link
//
// relay.go — single-slot elasticity relay.

package link

import "github.com/katalvlaran/qpulse/drag"

// Beat is one transfer on the stream.
type Beat struct {
	Sample drag.Sample
	Last   bool
}

// Inputs is sampled once per tick.
type Inputs struct {
	Valid  bool // upstream has a beat this tick
	Beat   Beat
	Ready  bool // downstream accepts a beat this tick
	LinkUp bool
}

// Outputs is what the relay offers downstream on a tick.
type Outputs struct {
	Valid bool
	Beat  Beat
}

// Stats counts beats by fate.
type Stats struct {
	Forwarded uint64
	Dropped   uint64 // arrived while the link was down
	Overruns  uint64 // arrived while the slot was full and not draining
	Flushed   uint64 // parked when the link went down
}

// Relay is the elasticity buffer. The zero value is an empty relay.
type Relay struct {
	slot  Beat
	full  bool
	stats Stats
}

// Stats returns the counters.
func (r *Relay) Stats() Stats { return r.stats }

// Pending reports whether a beat is parked in the slot.
func (r *Relay) Pending() bool { return r.full }

// Reset empties the slot and clears the counters.
func (r *Relay) Reset() { *r = Relay{} }

// Tick advances the relay by one cycle.
func (r *Relay) Tick(in Inputs) Outputs {
	if !in.LinkUp {
		if in.Valid {
			r.stats.Dropped++
		}
		if r.full {
			r.stats.Flushed++
			r.full = false
		}
		return Outputs{}
	}

	if r.full {
		out := Outputs{Valid: true, Beat: r.slot}
		switch {
		case in.Ready:
			r.stats.Forwarded++
			r.full = false
			if in.Valid {
				r.slot, r.full = in.Beat, true
			}
		case in.Valid:
			r.stats.Overruns++
		}
		return out
	}

	if !in.Valid {
		return Outputs{}
	}
	if in.Ready {
		r.stats.Forwarded++
	} else {
		r.slot, r.full = in.Beat, true
	}
	return Outputs{Valid: true, Beat: in.Beat}
}
