// Package qpulse is a bit-exact software model of a fixed-point DRAG pulse
// generator for qubit control, together with the floating-point reference
// and the tooling used to check one against the other.
//
// What is in the box?
//
//	A deterministic, cycle-level model of the generator core:
//		• Command/session control: Idle → Loaded → Active, one tick at a time
//		• Gaussian envelope from a 1024-entry exp table with interpolation
//		• Optional Wah-Wah modulation from a 2048-entry cosine table
//		• DRAG derivative and I/Q assembly with rounding and saturation
//		• Golden model, DTW alignment check, WAV/HTML/JSON export
//
// Packages:
//
//	fixed/     — Q-format value types, rounding, saturation, interpolation
//	lut/       — generated exp and cos tables
//	command/   — the Command value, validation, YAML pulse specs
//	envelope/  — Gaussian and cosine evaluators, envelope assembler
//	drag/      — derivative and I/Q output formation
//	generator/ — the tick-accurate controller and pipeline
//	golden/    — floating-point reference
//	align/     — dynamic time warping for the skew check
//	harness/   — DUT versus golden comparison and the regression suite
//	capture/   — WAV, HTML chart and JSON export
//	link/      — single-slot streaming relay
//	cmd/       — pulsegen (runs the suite) and lutgen (writes lut tables)
//
// Quick example:
//
//	cmd := command.New(64, 32, command.WithSigma(6), command.WithDragScale(0.5))
//	samples, err := generator.New().Run(cmd)
//
// streams 64 (I, Q) pairs of a DRAG-corrected Gaussian centred on sample 32.
package qpulse
