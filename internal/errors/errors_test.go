package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDockgenError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *DockgenError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestDockgenError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause
	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestDockgenError_ExitCode(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{ExitSuccess, "success"},
		{ExitGeneralError, "general"},
		{ExitProjectNotFound, "project not found"},
		{ExitUnknownImage, "unknown image"},
		{ExitPatchFailed, "patch failed"},
		{ExitConfigError, "config error"},
		{ExitCancelled, "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			if got := err.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestProjectNotFound(t *testing.T) {
	err := ProjectNotFound("/tmp/missing")

	if err.Code != ExitProjectNotFound {
		t.Errorf("Code = %d, want %d", err.Code, ExitProjectNotFound)
	}

	if err.Message != "project directory not found: /tmp/missing" {
		t.Errorf("Message = %q, want %q", err.Message, "project directory not found: /tmp/missing")
	}
}

func TestUnknownImage(t *testing.T) {
	err := UnknownImage("aspnet:9.9")

	if err.Code != ExitUnknownImage {
		t.Errorf("Code = %d, want %d", err.Code, ExitUnknownImage)
	}

	if err.Message != "unknown base image: aspnet:9.9" {
		t.Errorf("Message = %q, want %q", err.Message, "unknown base image: aspnet:9.9")
	}
}

func TestPatchFailed(t *testing.T) {
	cause := fmt.Errorf("invalid json")
	err := PatchFailed("project.json", cause)

	if err.Code != ExitPatchFailed {
		t.Errorf("Code = %d, want %d", err.Code, ExitPatchFailed)
	}

	if err.Message != "failed to patch project.json" {
		t.Errorf("Message = %q", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("invalid toml")
	err := ConfigError("failed to parse config", cause)

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "DockgenError",
			err:      ProjectNotFound("/tmp/test"),
			wantCode: ExitProjectNotFound,
		},
		{
			name:     "wrapped DockgenError",
			err:      fmt.Errorf("outer: %w", UnknownImage("test")),
			wantCode: ExitUnknownImage,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestIs(t *testing.T) {
	target := fmt.Errorf("target error")
	wrapped := fmt.Errorf("wrapped: %w", target)

	if !Is(wrapped, target) {
		t.Error("Is() should return true for wrapped error")
	}

	other := fmt.Errorf("other error")
	if Is(wrapped, other) {
		t.Error("Is() should return false for different error")
	}
}

func TestAs(t *testing.T) {
	dgErr := ProjectNotFound("/tmp/test")
	wrapped := fmt.Errorf("wrapped: %w", dgErr)

	var target *DockgenError
	if !As(wrapped, &target) {
		t.Error("As() should return true for wrapped DockgenError")
	}

	if target.Code != ExitProjectNotFound {
		t.Errorf("target.Code = %d, want %d", target.Code, ExitProjectNotFound)
	}

	// Test with non-DockgenError
	regularErr := fmt.Errorf("regular error")
	if As(regularErr, &target) {
		t.Error("As() should return false for non-DockgenError")
	}
}

func TestErrorChaining(t *testing.T) {
	// Test that our errors work with standard error unwrapping
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	// Should be able to find root cause
	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	// Should be able to extract DockgenError
	var dgErr *DockgenError
	if !errors.As(outer, &dgErr) {
		t.Error("errors.As should find DockgenError")
	}

	if dgErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", dgErr.Code, ExitConfigError)
	}
}
