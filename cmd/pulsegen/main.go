// Command pulsegen runs pulses through the fixed-point generator and the
// floating-point reference, then writes the comparison.
//
// Usage:
//
//	pulsegen [-config pulses.yaml] [-out dir] [-wav] [-html] [-json=false]
//	         [-rate 1000000] [-random N -seed S] [-log-level info]
//
// Without -config the built-in regression suite runs; -random appends N
// seeded random pulses. Outputs land in -out:
// pulse_results.json, one <name>.wav per pulse (left = I, right = Q) and
// pulses.html. The exit status is 1 if any pulse is outside tolerance or an
// output cannot be written.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/qpulse/capture"
	"github.com/katalvlaran/qpulse/command"
	"github.com/katalvlaran/qpulse/harness"
)

const (
	resultsFile = "pulse_results.json"
	htmlFile    = "pulses.html"
	defaultRate = 1_000_000
)

// errFailed reports pulses outside tolerance; outputs are still written.
var errFailed = errors.New("pulsegen: pulses outside tolerance")

type options struct {
	config   string
	out      string
	wav      bool
	html     bool
	json     bool
	rate     int
	random   int
	seed     int64
	logLevel string
}

func main() {
	var o options
	flag.StringVar(&o.config, "config", "", "YAML pulse file (default: built-in suite)")
	flag.StringVar(&o.out, "out", ".", "output directory")
	flag.BoolVar(&o.wav, "wav", false, "write one stereo WAV per pulse")
	flag.BoolVar(&o.html, "html", false, "write "+htmlFile)
	flag.BoolVar(&o.json, "json", true, "write "+resultsFile)
	flag.IntVar(&o.rate, "rate", defaultRate, "WAV sample rate in Hz")
	flag.IntVar(&o.random, "random", 0, "append N seeded random pulses")
	flag.Int64Var(&o.seed, "seed", 1, "seed for -random")
	flag.StringVar(&o.logLevel, "log-level", "info", "debug|info|warn|error")
	flag.Parse()

	logger, err := newLogger(os.Stderr, o.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulsegen: %v\n", err)
		os.Exit(2)
	}
	if err := run(o, logger); err != nil {
		logger.Error("pulsegen failed", "err", err)
		os.Exit(1)
	}
}

func run(o options, logger *slog.Logger) error {
	pulses, err := loadPulses(o.config)
	if err != nil {
		return err
	}
	pulses = append(pulses, harness.RandomSuite(o.random, o.seed)...)
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return err
	}

	rep, err := harness.RunSuite(pulses, harness.WithLogger(logger))
	if err != nil {
		return err
	}

	if o.json {
		if err := writeFile(filepath.Join(o.out, resultsFile), func(f *os.File) error {
			return capture.WriteJSON(f, rep)
		}); err != nil {
			return err
		}
	}
	if o.html {
		if err := writeFile(filepath.Join(o.out, htmlFile), func(f *os.File) error {
			return capture.RenderHTML(f, rep.Pulses)
		}); err != nil {
			return err
		}
	}
	if o.wav {
		for _, p := range pulses {
			samples, err := streamPulse(p.Cmd, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			path := filepath.Join(o.out, p.Name+".wav")
			if err := writeFile(path, func(f *os.File) error {
				return capture.WriteWAV(f, samples, o.rate)
			}); err != nil {
				return err
			}
			logger.Debug("wav written", "path", path, "samples", len(samples))
		}
	}

	if failed := rep.Failed(); len(failed) > 0 {
		return fmt.Errorf("%w: %v", errFailed, failed)
	}
	logger.Info("all pulses within tolerance", "pulses", len(rep.Pulses))
	return nil
}

func loadPulses(path string) ([]harness.Pulse, error) {
	if path == "" {
		return harness.DefaultSuite(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	specs, err := command.LoadSpecs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return harness.FromSpecs(specs)
}

// writeFile creates path, hands it to fn and closes it, keeping the first
// error.
func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
