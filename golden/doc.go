// Package golden is the floating-point reference model for the pulse
// generator. It evaluates the same pulse with math.Exp and math.Cos on the
// dequantized command parameters, so the only differences against the
// fixed-point core are table, interpolation and rounding error.
//
// The derivative follows the same boundary rules as the core (forward at
// n = 0, backward at n = length−1, halved central difference elsewhere) but
// in real arithmetic.
package golden
