// Package envelope evaluates the pulse envelope E[n] for a latched command.
//
// Three pieces, leaves first:
//
//   - Gaussian: exp(-(n−mu)²·k/2) from the exp LUT, with a clamp to zero past
//     15·ln2 and optional linear interpolation between table entries.
//   - Cosine: cos(2π·wm·|n−mu|) from the cos LUT, phase reduced modulo one
//     turn, with linear interpolation between adjacent entries.
//   - Envelope: the assembler. Plain mode widens the Gaussian into UQ1.15;
//     Wah-Wah mode multiplies it by clamp(1 − a·cos, 0, 1). Both modes return
//     the same UQ1.15 representation, so the derivative stage is mode-agnostic.
//
// Every evaluator takes an enable flag. A disabled Gaussian yields zero and a
// disabled Cosine yields the +1.0 sentinel; Envelope.At reports the disabled
// case through its boolean result so the single consuming site (the
// derivative) can substitute zero explicitly.
//
// All evaluation is pure: E[n] depends only on the command and n, so the
// generator calls At three times per tick (n−1, n, n+1) without storing
// history.
package envelope
