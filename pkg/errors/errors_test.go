package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidColor, "bad palette entry: %q", "#zz")

	if err.Code != ErrCodeInvalidColor {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidColor)
	}
	want := `INVALID_COLOR: bad palette entry: "#zz"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("queue never drained")
	err := Wrap(ErrCodeCyclicGraph, cause, "tier assignment failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "CYCLIC_GRAPH: tier assignment failed: queue never drained"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNoRoots, "graph has no root node")

	if !Is(err, ErrCodeNoRoots) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNoData) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNoRoots) {
		t.Error("Is should not match plain errors")
	}

	// Code survives wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("compute: %w", err)
	if !Is(wrapped, ErrCodeNoRoots) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNoData, "no rows")); got != ErrCodeNoData {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNoData)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeNoData, "no rows to lay out")); got != "no rows to lay out" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
