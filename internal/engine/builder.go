// Package engine builds validated calculation records and orchestrates
// history, snapshots, and notification sinks around them.
package engine

import (
	"errors"
	"math"
	"time"

	"github.com/rcliao/calc-session/internal/calcerr"
	"github.com/rcliao/calc-session/internal/model"
	"github.com/rcliao/calc-session/internal/validate"
)

// Create validates the operands, applies op, and produces an immutable
// Calculation with a finite result rounded to precision decimal digits
// (round half to even) and a current timestamp.
//
// Validation and operation failures propagate unchanged. Any other failure
// from the operation is wrapped in an OperationError naming op, so no
// internal error type leaks to callers.
func Create(op model.Op, a, b float64, precision int, maxMagnitude float64) (model.Calculation, error) {
	if err := validate.Values(op, a, b, maxMagnitude); err != nil {
		return model.Calculation{}, err
	}

	raw, err := op.Apply(a, b)
	if err != nil {
		var valErr *calcerr.ValidationError
		var opErr *calcerr.OperationError
		if errors.As(err, &valErr) || errors.As(err, &opErr) {
			return model.Calculation{}, err
		}
		return model.Calculation{}, &calcerr.OperationError{Op: string(op), Msg: "operation failed", Err: err}
	}

	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return model.Calculation{}, calcerr.Validation("result of %s(%v, %v) is not finite", op, a, b)
	}

	return model.Calculation{
		Op:        op,
		A:         a,
		B:         b,
		Result:    roundHalfEven(raw, precision),
		Timestamp: time.Now(),
	}, nil
}

// roundHalfEven rounds v to the given number of decimal digits using
// banker's rounding: exact halves go to the nearest even quotient, so the
// result is deterministic for all finite inputs.
func roundHalfEven(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.RoundToEven(v*scale) / scale
}
