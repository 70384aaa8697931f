// SPDX-License-Identifier: MIT
// Package: qpulse/generator
//
// generator.go — command/session controller and per-tick pipeline.
//
// Contract:
//   • Tick computes outputs from the registered state, then advances it.
//   • The latched command has one writer (accept, never while Active) and is
//     read by validation and the envelope evaluators.
//   • A reload and a start in the same Loaded tick: the reload wins and the
//     start is ignored, so a session never begins on an unvalidated command.

package generator

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qpulse/command"
	"github.com/katalvlaran/qpulse/drag"
	"github.com/katalvlaran/qpulse/envelope"
)

// Inputs is the control surface sampled on one tick.
type Inputs struct {
	CmdValid bool            // command-accept request
	Cmd      command.Command // payload, latched when CmdValid ∧ CmdReady
	Start    bool            // single-tick start trigger
}

// Outputs is the status surface and sample produced on one tick.
type Outputs struct {
	CmdReady bool // accept acknowledge: asserted in every state but Active
	Busy     bool
	Valid    bool
	Last     bool
	Err      bool
	Index    uint16      // sample index; meaningful only when Valid
	Sample   drag.Sample // zero unless Valid
}

// Generator is the pulse generator core. The zero value is not usable; call
// New.
type Generator struct {
	cfg config
	log *slog.Logger

	state  State
	cmd    command.Command
	env    envelope.Envelope
	index  uint16
	ticks  uint64
	starts uint64
}

// New returns a Generator in the Idle state.
func New(opts ...Option) *Generator {
	cfg := newConfig(opts...)
	return &Generator{
		cfg: cfg,
		log: cfg.logger,
	}
}

// State returns the registered controller state.
func (g *Generator) State() State { return g.state }

// Index returns the registered sample index (0 whenever not Active).
func (g *Generator) Index() uint16 { return g.index }

// Latched returns the latched command and whether one is awaiting start or
// streaming.
func (g *Generator) Latched() (command.Command, bool) {
	return g.cmd, g.state != Idle
}

// Ticks returns the number of ticks since New or Reset.
func (g *Generator) Ticks() uint64 { return g.ticks }

// Sessions returns the number of sessions started since New or Reset.
func (g *Generator) Sessions() uint64 { return g.starts }

// Reset forces Idle, clears the latched command and the counter.
func (g *Generator) Reset() {
	g.state = Idle
	g.cmd = command.Command{}
	g.env = envelope.Envelope{}
	g.index = 0
	g.ticks = 0
	g.starts = 0
	g.log.Debug("reset")
}

// Tick advances the model by one cycle.
func (g *Generator) Tick(in Inputs) Outputs {
	out := g.outputs()
	g.advance(in, out)
	g.ticks++
	return out
}

// outputs is the combinational view of the current registered state.
func (g *Generator) outputs() Outputs {
	active := g.state == Active
	out := Outputs{
		CmdReady: !active,
		Busy:     active,
		Valid:    active,
		Err:      g.state == Loaded && !g.cmd.Valid(),
	}
	if active {
		out.Index = g.index
		out.Last = g.index == g.cmd.Length-1
		out.Sample = g.sample(g.index)
	}
	return out
}

// sample runs the envelope/DRAG pipeline for index n of the active session.
func (g *Generator) sample(n uint16) drag.Sample {
	first := n == 0
	last := n == g.cmd.Length-1

	cur, _ := g.env.At(int(n))
	// Disabled neighbours come back as zero; Derivative ignores them anyway.
	prev, _ := g.env.At(int(n) - 1)
	next, _ := g.env.At(int(n) + 1)

	d := drag.Derivative(prev, cur, next, first, last)
	return drag.Assemble(g.cmd.Amp, g.cmd.Beta, cur, d)
}

// advance is the registered (clock-edge) update.
func (g *Generator) advance(in Inputs, out Outputs) {
	switch g.state {
	case Idle:
		if in.CmdValid {
			g.latch(in.Cmd)
			g.setState(Loaded)
		}

	case Loaded:
		switch {
		case in.CmdValid:
			g.latch(in.Cmd)
		case in.Start && g.cmd.Valid():
			g.env = envelope.New(g.cmd, g.cfg.interpolate)
			g.index = 0
			g.starts++
			g.setState(Active)
		case in.Start:
			g.log.Warn("start rejected", "cmd", g.cmd.String(), "err", g.cmd.Validate())
		}

	case Active:
		if out.Last {
			g.index = 0
			g.setState(Idle)
			return
		}
		g.index++
	}
}

func (g *Generator) latch(cmd command.Command) {
	g.cmd = cmd
	g.log.Debug("command latched", "cmd", cmd.String(), "valid", cmd.Valid())
}

func (g *Generator) setState(s State) {
	g.log.Debug("state", "from", g.state.String(), "to", s.String(), "tick", g.ticks)
	g.state = s
}

// Run drives one whole session for cmd: accept, start, then stream until
// the last sample. It returns exactly cmd.Length samples, or an error
// wrapping ErrRejected and the validation sentinel with no samples. Run
// leaves the generator Idle on success and Loaded on rejection.
func (g *Generator) Run(cmd command.Command) ([]drag.Sample, error) {
	if g.state == Active {
		return nil, fmt.Errorf("Run: %w", ErrBusy)
	}
	g.Tick(Inputs{CmdValid: true, Cmd: cmd})
	out := g.Tick(Inputs{Start: true})
	if out.Err {
		return nil, fmt.Errorf("Run: %w: %w", ErrRejected, g.cmd.Validate())
	}

	samples := make([]drag.Sample, 0, cmd.Length)
	for {
		out = g.Tick(Inputs{})
		if !out.Valid {
			// Unreachable for a valid command: Active follows start directly.
			return samples, fmt.Errorf("Run: stream ended after %d samples: %w", len(samples), ErrRejected)
		}
		samples = append(samples, out.Sample)
		if out.Last {
			return samples, nil
		}
	}
}
