package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qpulse/command"
	"github.com/katalvlaran/qpulse/drag"
	"github.com/katalvlaran/qpulse/generator"
	"github.com/katalvlaran/qpulse/link"
)

// errLinkLoss reports beats lost between the generator and the capture.
var errLinkLoss = errors.New("pulsegen: beats lost on the link")

// streamPulse runs one session tick by tick and captures it on the far side
// of a link relay, the way a waveform recorder would see it.
func streamPulse(cmd command.Command, logger *slog.Logger) ([]drag.Sample, error) {
	gen := generator.New(generator.WithLogger(logger))
	gen.Tick(generator.Inputs{CmdValid: true, Cmd: cmd})
	if out := gen.Tick(generator.Inputs{Start: true}); out.Err {
		return nil, fmt.Errorf("%w: %w", generator.ErrRejected, cmd.Validate())
	}

	var relay link.Relay
	samples := make([]drag.Sample, 0, cmd.Length)
	// The relay may hold one beat, so allow a single extra drain tick.
	for tick := 0; tick <= int(cmd.Length); tick++ {
		out := gen.Tick(generator.Inputs{})
		o := relay.Tick(link.Inputs{
			Valid:  out.Valid,
			Beat:   link.Beat{Sample: out.Sample, Last: out.Last},
			Ready:  true,
			LinkUp: true,
		})
		if !o.Valid {
			continue
		}
		samples = append(samples, o.Beat.Sample)
		if o.Beat.Last {
			break
		}
	}

	st := relay.Stats()
	if len(samples) != int(cmd.Length) {
		return samples, fmt.Errorf("%w: got %d of %d (%+v)", errLinkLoss, len(samples), cmd.Length, st)
	}
	logger.Debug("session captured", "samples", len(samples), "forwarded", st.Forwarded)
	return samples, nil
}
