// SPDX-License-Identifier: MIT
// Package: qpulse/capture
//
// json.go — pulse_results.json.

package capture

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/qpulse/harness"
)

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep harness.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("capture: json: %w", err)
	}
	return nil
}

// ReadJSON parses a report written by WriteJSON.
func ReadJSON(r io.Reader) (harness.Report, error) {
	var rep harness.Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return harness.Report{}, fmt.Errorf("capture: json: %w", err)
	}
	return rep, nil
}
