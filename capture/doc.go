// Package capture exports generator output and verification results.
//
//   - WAV: a 16-bit stereo file, left = I, right = Q, one frame per sample.
//     The raw SQ1.15 values are written unchanged, so a WAV round trip is
//     bit-exact.
//   - HTML: DUT-versus-golden line charts, two per pulse (I and Q).
//   - JSON: the harness Report in pulse_results.json layout.
package capture
