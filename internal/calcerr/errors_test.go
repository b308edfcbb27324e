package calcerr

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Validation("input %q is not a number", "x"), `input "x" is not a number`},
		{Operation("divide", "division by zero is undefined"), "divide: division by zero is undefined"},
		{&OperationError{Op: "cubed", Err: ErrUnknownOperation}, "cubed: unknown operation"},
		{&HistoryError{Err: ErrNothingToUndo}, "nothing to undo"},
		{HistoryWrap("load history", errors.New("disk gone")), "load history: disk gone"},
		{Config("CALC_PRECISION must be between 0 and 12, got %d", 13), "CALC_PRECISION must be between 0 and 12, got 13"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := HistoryWrap("context", cause)
	if !errors.Is(wrapped, cause) {
		t.Error("HistoryError does not unwrap to its cause")
	}

	var histErr *HistoryError
	if !errors.As(wrapped, &histErr) {
		t.Error("wrapped error does not match *HistoryError")
	}

	if !errors.Is(&OperationError{Op: "x", Err: ErrUnknownOperation}, ErrUnknownOperation) {
		t.Error("OperationError does not unwrap to sentinel")
	}
}
