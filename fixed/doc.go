// Package fixed provides the small fixed-point value types used by the pulse
// pipeline, together with the rounding, saturation and interpolation helpers
// that every narrowing step goes through.
//
// Notation follows the usual Q-format convention: UQm.n is unsigned with m
// integer and n fractional bits, SQm.n is two's complement signed where the
// m integer bits include the sign. Type names spell the format with an
// underscore (UQ0_15 is UQ0.15).
//
// Formats:
//
//	UQ0_15  uint16  [0, 1)        Gaussian evaluator output
//	UQ1_15  uint16  [0, 2)        envelope and modulation terms
//	UQ2_14  uint16  [0, 4)        inverse variance 1/σ²
//	UQ0_16  uint16  [0, 1)        frequencies in cycles per sample
//	SQ1_15  int16   [-1, 1)       amplitudes, cosine values, I/Q outputs
//	SQ2_15  int32   [-2, 2)       finite-difference derivative
//
// Policy:
//   - Conversions from float64 round to nearest and saturate; they never wrap.
//   - Narrowing multiplies use RoundShift (round half up, arithmetic shift).
//   - Output formation uses SaturateSQ1_15 so overflow clamps to the nearest
//     representable extreme.
package fixed
