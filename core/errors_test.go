package core

import (
	"errors"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(NumericError, cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected Wrap to preserve Unwrap chain to cause")
	}
}

func TestErrorAsKind(t *testing.T) {
	err := NewError(InvalidConfiguration, "bad config")
	var target *Error
	if !errors.As(err, &target) {
		t.Fatalf("expected errors.As to find *Error")
	}
	if target.Kind != InvalidConfiguration {
		t.Errorf("got kind %v, want InvalidConfiguration", target.Kind)
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		InvalidConfiguration: "InvalidConfiguration",
		InvalidState:         "InvalidState",
		NumericError:         "NumericError",
		Cancelled:            "Cancelled",
		RejectedExecution:    "RejectedExecution",
		StorageError:         "StorageError",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("kind %d: got %q, want %q", kind, got, want)
		}
	}
}
