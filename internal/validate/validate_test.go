package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/rcliao/calc-session/internal/calcerr"
	"github.com/rcliao/calc-session/internal/model"
)

func TestNumber(t *testing.T) {
	v, err := Number("2.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v != 2.5 {
		t.Errorf("expected 2.5, got %v", v)
	}

	for _, raw := range []string{"abc", "", "1.2.3", "NaN", "Inf", "-Inf"} {
		_, err := Number(raw)
		var valErr *calcerr.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("Number(%q): expected ValidationError, got %v", raw, err)
		}
	}
}

func TestValuesRange(t *testing.T) {
	if err := Values(model.OpAdd, 100, -100, 1000); err != nil {
		t.Errorf("in-range values rejected: %v", err)
	}

	err := Values(model.OpAdd, 1001, 0, 1000)
	var valErr *calcerr.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError for out-of-range a, got %v", err)
	}

	err = Values(model.OpAdd, 0, -1001, 1000)
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError for out-of-range b, got %v", err)
	}

	// Boundary is inclusive.
	if err := Values(model.OpAdd, 1000, -1000, 1000); err != nil {
		t.Errorf("boundary values rejected: %v", err)
	}
}

func TestValuesNonFinite(t *testing.T) {
	var valErr *calcerr.ValidationError
	if err := Values(model.OpAdd, math.NaN(), 1, 1000); !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError for NaN, got %v", err)
	}
	if err := Values(model.OpAdd, 1, math.Inf(1), 1000); !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError for Inf, got %v", err)
	}
}

func TestValuesZeroDivisor(t *testing.T) {
	for _, op := range []model.Op{model.OpDivide, model.OpModulus, model.OpIntDivide, model.OpPercent} {
		err := Values(op, 1, 0, 1000)
		var opErr *calcerr.OperationError
		if !errors.As(err, &opErr) {
			t.Errorf("%s: expected OperationError for zero divisor, got %v", op, err)
		}
	}
	// Zero divisor is fine for non-divisive ops.
	if err := Values(model.OpMultiply, 1, 0, 1000); err != nil {
		t.Errorf("multiply by zero rejected: %v", err)
	}
}

func TestValuesRoot(t *testing.T) {
	var opErr *calcerr.OperationError
	if err := Values(model.OpRoot, 4, 0, 1000); !errors.As(err, &opErr) {
		t.Errorf("expected OperationError for zero degree, got %v", err)
	}
	if err := Values(model.OpRoot, -16, 2, 1000); !errors.As(err, &opErr) {
		t.Errorf("expected OperationError for even root of negative, got %v", err)
	}
	if err := Values(model.OpRoot, -27, 3, 1000); err != nil {
		t.Errorf("odd root of negative rejected: %v", err)
	}
	if err := Values(model.OpRoot, 16, 2.5, 1000); err != nil {
		t.Errorf("fractional degree rejected: %v", err)
	}
}

func TestOperands(t *testing.T) {
	a, b, err := Operands(model.OpDivide, "10", "4", 1000)
	if err != nil {
		t.Fatalf("operands: %v", err)
	}
	if a != 10 || b != 4 {
		t.Errorf("expected (10, 4), got (%v, %v)", a, b)
	}

	if _, _, err := Operands(model.OpDivide, "x", "4", 1000); err == nil {
		t.Error("expected error for non-numeric operand")
	}
	if _, _, err := Operands(model.OpDivide, "10", "0", 1000); err == nil {
		t.Error("expected error for zero divisor")
	}
}
