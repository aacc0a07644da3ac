package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeScreenNotFound, "no state for screen %q", "DP-1")

	if err.Code != ErrCodeScreenNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeScreenNotFound)
	}
	if err.Message != `no state for screen "DP-1"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	want := `SCREEN_NOT_FOUND: no state for screen "DP-1"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(ErrCodeInvalidConfig, cause, "loading %s", "/etc/tilekit.toml")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeZoneCountMismatch, "3 zones for 5 windows")

	if !Is(err, ErrCodeZoneCountMismatch) {
		t.Error("Is with matching code = false")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is with different code = true")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("Is on plain error = true")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is(nil) = true")
	}

	// Codes are found through wrapping layers.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeZoneCountMismatch) {
		t.Error("Is through fmt wrapping = false")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeWindowNotFound, "x")); got != ErrCodeWindowNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeWindowNotFound)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeAlgorithmNotFound, "no algorithm %q", "spiral")
	if got := UserMessage(err); got != `no algorithm "spiral"` {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
