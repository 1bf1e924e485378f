// Package errors provides structured error types and exit codes for jobsummary.
package errors

import (
	"errors"
	"fmt"

	"github.com/AndreyAkinshin/jobsummary/pkg/jobsummary"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = jobsummary.ExitSuccess     // Success
	ExitRuntimeError = jobsummary.ExitFailure     // Runtime error (unreadable log, unwritable report, etc.)
	ExitConfigError  = jobsummary.ExitConfigError // Configuration error (missing flag, invalid config file, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindInput
	KindOutput
)

// String returns a short lowercase name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	default:
		return "runtime"
	}
}

// SummaryError is the base error type for jobsummary.
type SummaryError struct {
	Kind    ErrorKind
	Message string
	Path    string // File path if applicable
	Cause   error  // Underlying error
}

func (e *SummaryError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SummaryError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *SummaryError) ExitCode() int {
	if e.Kind == KindConfig {
		return ExitConfigError
	}
	return ExitRuntimeError
}

// New creates a new runtime error.
func New(message string) *SummaryError {
	return &SummaryError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *SummaryError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *SummaryError {
	return &SummaryError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *SummaryError {
	return Config(fmt.Sprintf(format, args...))
}

// Input creates an error for a log file that could not be read or decoded.
func Input(path string, cause error) *SummaryError {
	return &SummaryError{
		Kind:    KindInput,
		Message: "cannot read log",
		Path:    path,
		Cause:   cause,
	}
}

// Output creates an error for a report destination that could not be written.
func Output(path string, cause error) *SummaryError {
	return &SummaryError{
		Kind:    KindOutput,
		Message: "cannot write report",
		Path:    path,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *SummaryError {
	return &SummaryError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// IsKind reports whether any SummaryError in err's chain has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *SummaryError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var se *SummaryError
	if errors.As(err, &se) {
		return se.ExitCode()
	}
	return ExitRuntimeError
}
