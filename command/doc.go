// Package command defines the pulse Command latched by the generator, its
// validity predicate, and the ways to build one.
//
// A Command is an immutable value in the generator's native fixed-point
// formats. It can be constructed three ways:
//
//   - directly, by filling the struct with raw fixed-point values;
//   - from physical parameters with New(length, center, opts...), using
//     functional options (WithSigma, WithAmplitude, WithDragScale, WithWahWah);
//   - from a YAML pulse file through LoadSpecs and Spec.Command.
//
// Validity (see Validate):
//
//	length > 2, center < length, inverse variance ≠ 0,
//	and, when Wah-Wah modulation is enabled, secondary frequency ≠ 0.
//
// A zero secondary amplitude is valid; it degenerates to a plain
// Gaussian/DRAG pulse.
package command
