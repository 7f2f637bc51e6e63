package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures described in spec §7.
type ErrorKind int

const (
	// InvalidConfiguration covers K=0, K>N, mismatched seed dimension,
	// non-positive progress endpoints, begin > end. Fatal, raised
	// synchronously from the configuring call.
	InvalidConfiguration ErrorKind = iota
	// InvalidState covers reset while running, start twice, set-endpoints
	// after start. Fatal, raised synchronously.
	InvalidState
	// NumericError covers non-finite values and variance underflow.
	// Captured by the task and surfaced through get().
	NumericError
	// Cancelled marks a cooperative cancel observed at a checkpoint.
	Cancelled
	// RejectedExecution marks a second concurrent attempt to run a task.
	RejectedExecution
	// StorageError originates from the external TupleListFactory collaborator.
	StorageError
)

// String returns the error kind's name.
func (k ErrorKind) String() string {
	switch k {
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case InvalidState:
		return "InvalidState"
	case NumericError:
		return "NumericError"
	case Cancelled:
		return "Cancelled"
	case RejectedExecution:
		return "RejectedExecution"
	case StorageError:
		return "StorageError"
	default:
		return "Unknown"
	}
}

// Error wraps a cause with the ErrorKind spec §7 assigns it, so callers can
// branch on kind via errors.As rather than string matching.
type Error struct {
	Kind  ErrorKind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError builds an *Error of the given kind wrapping msg.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Cause: errors.New(msg)}
}

// Wrap builds an *Error of the given kind wrapping an existing error.
func Wrap(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Sentinel errors for common, identity-comparable failure conditions.
var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKNotPositive indicates clusterCount was zero or negative.
	ErrKNotPositive = errors.New("cluster count must be >= 1")

	// ErrKExceedsN indicates more clusters were requested than rows exist.
	ErrKExceedsN = errors.New("cluster count exceeds row count")

	// ErrDimensionMismatch indicates two tuples or stores disagree on dimension.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNonFinite indicates a tuple contained a NaN or infinite coordinate.
	ErrNonFinite = errors.New("non-finite coordinate")

	// ErrAlreadyRunning indicates a second attempt to start a running task.
	ErrAlreadyRunning = errors.New("task is already running")

	// ErrNotTerminal indicates reset() was called on a non-terminal task, or
	// get() was called on a task that has not been started.
	ErrNotTerminal = errors.New("task is not in a terminal state")

	// ErrTimeout indicates get(timeout) elapsed before the task finished.
	ErrTimeout = errors.New("timed out waiting for task result")

	// ErrCancelled is surfaced by get() when the task's terminal outcome was Cancelled.
	ErrCancelled = errors.New("task was cancelled")

	// ErrEmptyStore indicates an operation required at least one row.
	ErrEmptyStore = errors.New("tuple store is empty")

	// ErrIndexOutOfBounds indicates a row or local index outside the valid range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrDuplicateIndex indicates a FilteredTupleStore was given a repeated original index.
	ErrDuplicateIndex = errors.New("duplicate row index")
)
