// Package harness is the verification harness: it drives pulses through the
// fixed-point generator, evaluates the floating-point golden model for the
// same commands, and reports per-sample differences.
//
// A Result records, for each sample, the raw SQ1.15 outputs of both models
// and their real values (the *_r fields), the worst |ΔI| and |ΔQ| in LSB,
// and a DTW alignment check of the in-phase traces (Skew = 0 means the
// stream is not delayed or advanced relative to the reference).
//
// The JSON form of Report keeps the field names of the established
// pulse_results.json so existing plotting tools keep working.
package harness
