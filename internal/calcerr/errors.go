// Package calcerr defines the error taxonomy shared by the calculator core.
//
// Every failure surfaced by the core is one of four kinds: ValidationError
// (bad operand), OperationError (operation precondition violated or the
// operation itself failed), HistoryError (undo/redo misuse or persistence
// fault), and ConfigError (rejected configuration). Callers distinguish kinds
// with errors.As and render them differently.
package calcerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers match on directly.
var (
	// ErrNothingToUndo indicates the undo stack holds no prior state.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrFileNotFound indicates the history file does not exist.
	ErrFileNotFound = errors.New("history file not found")

	// ErrUnknownOperation indicates an operation name outside the fixed set.
	ErrUnknownOperation = errors.New("unknown operation")
)

// ValidationError reports an operand that is not numeric, not finite, or
// outside the configured range.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// OperationError reports a violated operation precondition (zero divisor,
// even root of a negative number), an unknown operation name, a non-finite
// result, or an unexpected failure inside an operation.
type OperationError struct {
	Op  string
	Msg string
	Err error
}

func (e *OperationError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

func (e *OperationError) Unwrap() error { return e.Err }

// Operation builds an OperationError for the named operation.
func Operation(op, format string, args ...any) error {
	return &OperationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// HistoryError reports undo/redo misuse or a persistence failure.
type HistoryError struct {
	Msg string
	Err error
}

func (e *HistoryError) Error() string {
	if e.Msg != "" && e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *HistoryError) Unwrap() error { return e.Err }

// History builds a HistoryError from a format string.
func History(format string, args ...any) error {
	return &HistoryError{Msg: fmt.Sprintf(format, args...)}
}

// HistoryWrap wraps err in a HistoryError, keeping it matchable with
// errors.Is/errors.As.
func HistoryWrap(msg string, err error) error {
	return &HistoryError{Msg: msg, Err: err}
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config builds a ConfigError from a format string.
func Config(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
