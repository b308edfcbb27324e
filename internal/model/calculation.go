// Package model defines the core calculation data types.
package model

import (
	"math"
	"strings"
	"time"

	"github.com/rcliao/calc-session/internal/calcerr"
)

// Op identifies one of the fixed arithmetic operations.
type Op string

// The closed set of operations. There are no others; Apply dispatches
// exhaustively over these.
const (
	OpAdd       Op = "add"
	OpSubtract  Op = "subtract"
	OpMultiply  Op = "multiply"
	OpDivide    Op = "divide"
	OpPower     Op = "power"
	OpRoot      Op = "root"
	OpModulus   Op = "modulus"
	OpIntDivide Op = "int_divide"
	OpPercent   Op = "percent"
	OpAbsDiff   Op = "abs_diff"
)

// Ops lists every operation in display order.
var Ops = []Op{
	OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower,
	OpRoot, OpModulus, OpIntDivide, OpPercent, OpAbsDiff,
}

// Descriptions maps each operation to its help text.
var Descriptions = map[Op]string{
	OpAdd:       "Add two numbers",
	OpSubtract:  "Subtract two numbers",
	OpMultiply:  "Multiply two numbers",
	OpDivide:    "Divide two numbers",
	OpPower:     "Raise one number to the power of another",
	OpRoot:      "Find the nth root of a number",
	OpModulus:   "Find remainder of division",
	OpIntDivide: "Integer division (truncate)",
	OpPercent:   "Percentage (a/b * 100)",
	OpAbsDiff:   "Absolute difference between numbers",
}

// ParseOp resolves a user-supplied name to an Op. This is the only place an
// unknown operation can surface at runtime.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Descriptions[op]; !ok {
		return "", &calcerr.OperationError{Op: string(op), Err: calcerr.ErrUnknownOperation}
	}
	return op, nil
}

// Divisive reports whether the operation divides by its second operand and
// therefore requires b != 0.
func (op Op) Divisive() bool {
	switch op {
	case OpDivide, OpModulus, OpIntDivide, OpPercent:
		return true
	}
	return false
}

// Apply executes the operation on two operands. The zero-divisor and
// even-root preconditions are re-checked here even though the validator
// screens them first; dispatch must never return a value for an undefined
// operation.
func (op Op) Apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, calcerr.Operation(string(op), "division by zero is undefined")
		}
		return a / b, nil
	case OpPower:
		return math.Pow(a, b), nil
	case OpRoot:
		if b == 0 {
			return 0, calcerr.Operation(string(op), "root with zero degree is undefined")
		}
		if a < 0 {
			if EvenIntegerDegree(b) {
				return 0, calcerr.Operation(string(op), "even root of negative number is not real")
			}
			return -math.Pow(-a, 1/b), nil
		}
		return math.Pow(a, 1/b), nil
	case OpModulus:
		if b == 0 {
			return 0, calcerr.Operation(string(op), "modulus by zero is undefined")
		}
		return math.Mod(a, b), nil
	case OpIntDivide:
		if b == 0 {
			return 0, calcerr.Operation(string(op), "integer division by zero is undefined")
		}
		return math.Trunc(a / b), nil
	case OpPercent:
		if b == 0 {
			return 0, calcerr.Operation(string(op), "percent with zero base is undefined")
		}
		return a / b * 100, nil
	case OpAbsDiff:
		return math.Abs(a - b), nil
	}
	return 0, &calcerr.OperationError{Op: string(op), Err: calcerr.ErrUnknownOperation}
}

// EvenIntegerDegree reports whether b is an integer with even absolute
// value. An even integer degree makes a real root of a negative radicand
// impossible; an odd integer degree is fine.
func EvenIntegerDegree(b float64) bool {
	if b != math.Trunc(b) {
		return false
	}
	return math.Mod(math.Abs(b), 2) == 0
}

// Calculation is an immutable record of one evaluated operation. The result
// is guaranteed finite at construction time and never mutated afterwards.
type Calculation struct {
	Op        Op        `json:"operation"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}
