// Package validate centralizes input validation. Every operation receives
// only finite, in-range operands that satisfy its preconditions.
package validate

import (
	"math"
	"strconv"

	"github.com/rcliao/calc-session/internal/calcerr"
	"github.com/rcliao/calc-session/internal/model"
)

// Number converts a raw operand to a float64, rejecting anything that is not
// a finite number.
func Number(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, calcerr.Validation("input %q is not a number", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calcerr.Validation("input %q is not finite", raw)
	}
	return v, nil
}

// Values applies every numeric rule for op to already-converted operands:
// finiteness, magnitude bound, and operation preconditions.
func Values(op model.Op, a, b, maxMagnitude float64) error {
	for _, v := range [2]float64{a, b} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return calcerr.Validation("inputs must be finite numbers")
		}
	}
	for _, v := range [2]float64{a, b} {
		if math.Abs(v) > maxMagnitude {
			return calcerr.Validation("input value %v exceeds allowed limit (%v)", v, maxMagnitude)
		}
	}

	if op.Divisive() && b == 0 {
		return calcerr.Operation(string(op), "division or modulus by zero is undefined")
	}
	if op == model.OpRoot {
		if b == 0 {
			return calcerr.Operation(string(op), "root with zero degree is undefined")
		}
		if a < 0 && model.EvenIntegerDegree(b) {
			return calcerr.Operation(string(op), "even root of negative number is not real")
		}
	}
	return nil
}

// Operands converts two raw operands and validates them for op. Returns the
// numeric values on success.
func Operands(op model.Op, rawA, rawB string, maxMagnitude float64) (float64, float64, error) {
	a, err := Number(rawA)
	if err != nil {
		return 0, 0, err
	}
	b, err := Number(rawB)
	if err != nil {
		return 0, 0, err
	}
	if err := Values(op, a, b, maxMagnitude); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
