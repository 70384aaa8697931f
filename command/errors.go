// SPDX-License-Identifier: MIT
// Package: qpulse/command
//
// errors.go — sentinel errors for command validation.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Validate wraps exactly one sentinel with method context via %w.
//   • When several checks fail, the first in declaration order wins.

package command

import (
	"errors"
	"fmt"
)

// ErrLengthTooShort indicates length ≤ 2; a session needs distinct first,
// interior and last samples.
var ErrLengthTooShort = errors.New("command: length must be greater than 2")

// ErrCenterOutOfRange indicates center ≥ length.
var ErrCenterOutOfRange = errors.New("command: center must be less than length")

// ErrZeroInverseVariance indicates an inverse variance of zero (infinitely
// wide Gaussian).
var ErrZeroInverseVariance = errors.New("command: inverse variance must be non-zero")

// ErrZeroSecondaryFrequency indicates Wah-Wah modulation enabled with a zero
// modulation frequency.
var ErrZeroSecondaryFrequency = errors.New("command: secondary frequency must be non-zero when Wah-Wah is enabled")

// ErrBadSpec indicates a pulse description that cannot be converted into a
// Command (non-finite or non-positive physical values).
var ErrBadSpec = errors.New("command: invalid pulse spec")

// Method names used as error context.
const (
	MethodValidate = "Validate"
	MethodSpec     = "Spec.Command"
	MethodLoad     = "LoadSpecs"
)

// commandErrorf wraps err with the given method context.
func commandErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
