// SPDX-License-Identifier: MIT
// Package: qpulse/command
//
// spec.go — human-editable pulse descriptions (YAML) and their conversion.
//
// File format:
//
//	pulses:
//	  - name: drag
//	    len: 64
//	    mu: 32
//	    sigma: 6
//	    amp: 0.5
//	    beta: 0.5
//	  - name: wahwah
//	    len: 128
//	    mu: 64
//	    sigma: 16
//	    amp: 0.5
//	    wah: {amp: 0.3, freq: 0.05}

package command

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Spec describes a pulse in physical units.
type Spec struct {
	Name      string   `yaml:"name" json:"name"`
	Length    int      `yaml:"len" json:"len"`
	Center    int      `yaml:"mu" json:"mu"`
	Sigma     float64  `yaml:"sigma" json:"sigma"`
	Amplitude float64  `yaml:"amp" json:"amp"`
	DragScale float64  `yaml:"beta" json:"beta"`
	Wah       *WahSpec `yaml:"wah,omitempty" json:"wah,omitempty"`
}

// WahSpec describes the optional secondary modulation.
type WahSpec struct {
	Amplitude float64 `yaml:"amp" json:"amp"`
	Frequency float64 `yaml:"freq" json:"freq"`
}

type specFile struct {
	Pulses []Spec `yaml:"pulses"`
}

// Command converts s into a Command. It rejects values that have no
// fixed-point meaning (lengths outside uint16, non-finite numbers, σ ≤ 0)
// with ErrBadSpec; the result may still fail Validate.
func (s Spec) Command() (Command, error) {
	if s.Length < 0 || s.Length > math.MaxUint16 || s.Center < 0 || s.Center > math.MaxUint16 {
		return Command{}, fmt.Errorf("%s: %q: len/mu out of range: %w", MethodSpec, s.Name, ErrBadSpec)
	}
	if !(s.Sigma > 0) || math.IsInf(s.Sigma, 1) {
		return Command{}, fmt.Errorf("%s: %q: sigma must be positive: %w", MethodSpec, s.Name, ErrBadSpec)
	}
	vals := []float64{s.Amplitude, s.DragScale}
	if s.Wah != nil {
		vals = append(vals, s.Wah.Amplitude, s.Wah.Frequency)
		if s.Wah.Frequency < 0 {
			return Command{}, fmt.Errorf("%s: %q: negative wah frequency: %w", MethodSpec, s.Name, ErrBadSpec)
		}
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Command{}, fmt.Errorf("%s: %q: non-finite value: %w", MethodSpec, s.Name, ErrBadSpec)
		}
	}

	opts := []Option{
		WithSigma(s.Sigma),
		WithAmplitude(s.Amplitude),
		WithDragScale(s.DragScale),
	}
	if s.Wah != nil {
		opts = append(opts, WithWahWah(s.Wah.Amplitude, s.Wah.Frequency))
	}
	return New(uint16(s.Length), uint16(s.Center), opts...), nil
}

// LoadSpecs parses a YAML pulse file. An empty pulse list is an error.
func LoadSpecs(r io.Reader) ([]Spec, error) {
	var f specFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: empty document: %w", MethodLoad, ErrBadSpec)
		}
		return nil, fmt.Errorf("%s: %w", MethodLoad, err)
	}
	if len(f.Pulses) == 0 {
		return nil, fmt.Errorf("%s: no pulses: %w", MethodLoad, ErrBadSpec)
	}
	return f.Pulses, nil
}
