// Package generator is the cycle-accurate model of the pulse generator core:
// the command/session controller plus the envelope and DRAG pipeline it
// gates.
//
// The model advances one tick per call to Tick. Outputs of a tick are a
// function of the registered state at the start of that tick; the state
// then moves on. This gives the usual synchronous-hardware ordering: a
// command accepted in tick T is visible to validation and to start no
// earlier than tick T+1.
//
// States:
//
//	Idle ──cmd──▶ Loaded ──start ∧ valid──▶ Active ──last──▶ Idle
//	               │  ▲
//	               └──┘ cmd (reload, last writer wins)
//
// Status outputs:
//
//	CmdReady  state ≠ Active
//	Busy      state = Active
//	Valid     state = Active (no backpressure)
//	Last      Active ∧ index = length−1
//	Err       Loaded ∧ ¬valid(command), recomputed every tick, never latched
//
// Reset forces Idle and clears the latched command. There is no
// mid-session cancel; a started session always runs to completion.
package generator
