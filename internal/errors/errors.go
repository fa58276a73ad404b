package errors

import (
	"errors"
	"fmt"
)

// Exit codes for dockgen
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitProjectNotFound = 2
	ExitUnknownImage    = 3
	ExitPatchFailed     = 4
	ExitConfigError     = 5
	ExitCancelled       = 6
)

// DockgenError is the base error type for dockgen
type DockgenError struct {
	Code    int
	Message string
	Cause   error
}

func (e *DockgenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DockgenError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *DockgenError) ExitCode() int {
	return e.Code
}

// New creates a new DockgenError
func New(code int, message string) *DockgenError {
	return &DockgenError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a DockgenError
func Wrap(code int, message string, cause error) *DockgenError {
	return &DockgenError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ProjectNotFound returns an error for a missing project directory
func ProjectNotFound(dir string) *DockgenError {
	return New(ExitProjectNotFound, fmt.Sprintf("project directory not found: %s", dir))
}

// UnknownImage returns an error for an unrecognized base image
func UnknownImage(image string) *DockgenError {
	return New(ExitUnknownImage, fmt.Sprintf("unknown base image: %s", image))
}

// UnknownProjectType returns an error for an unrecognized project type
func UnknownProjectType(name string) *DockgenError {
	return New(ExitUnknownImage, fmt.Sprintf("unknown project type: %s", name))
}

// PatchFailed returns an error for manifest/entry-point patch failures
func PatchFailed(file string, cause error) *DockgenError {
	return Wrap(ExitPatchFailed, fmt.Sprintf("failed to patch %s", file), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *DockgenError {
	return Wrap(ExitConfigError, message, cause)
}

// WriteError returns an error for artifact write failures
func WriteError(path string, cause error) *DockgenError {
	return Wrap(ExitGeneralError, fmt.Sprintf("failed to write %s", path), cause)
}

// Cancelled returns an error for a user-cancelled wizard
func Cancelled() *DockgenError {
	return New(ExitCancelled, "cancelled")
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *DockgenError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var dgErr *DockgenError
	if errors.As(err, &dgErr) {
		return dgErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
