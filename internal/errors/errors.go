package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess         = 0   // Indicates successful execution.
	ExitErrorGeneric    = 1   // Indicates a generic or generation error.
	ExitErrorTimeout    = 2   // Indicates the operation timed out.
	ExitErrorValidation = 3   // Indicates the mission statement was rejected.
	ExitErrorConfig     = 4   // Indicates a configuration error.
	ExitErrorCanceled   = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// User-facing messages. These strings are part of the observable contract of
// the workflow and are asserted on by callers and tests.
const (
	// MissionTooShortMessage is shown when the mission statement is rejected
	// before any remote call is made.
	MissionTooShortMessage = "Please provide a more detailed mission statement."
	// GenerationFailedPrefix prefixes every generation failure message.
	GenerationFailedPrefix = "Failed to generate brand identity."
	// UnknownErrorMessage replaces a failure description that is empty.
	UnknownErrorMessage = "An unknown error occurred."
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and carries the advisory shown to the user.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// Stage names the remote operation a GenerationError originated from.
type Stage string

// Generation stages.
const (
	StageIdentity Stage = "identity"
	StageLogos    Stage = "logos"
)

// GenerationError encapsulates a failed remote generation while preserving
// the original cause. Either operation failing, returning a malformed payload,
// or returning zero images is reported through this type.
type GenerationError struct {
	// Stage is the remote operation that failed.
	Stage Stage
	// Cause is the underlying error that triggered this generation error.
	Cause error
}

// Error returns the stage and the message from the underlying cause.
func (e GenerationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s generation failed", e.Stage)
	}
	return fmt.Sprintf("%s generation failed: %v", e.Stage, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e GenerationError) Unwrap() error { return e.Cause }

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// UserMessage maps an error to the one message string shown to the user for
// a failed attempt. It returns the empty string for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	detail := UnknownErrorMessage
	var genErr GenerationError
	if errors.As(err, &genErr) {
		if genErr.Cause != nil && genErr.Cause.Error() != "" {
			detail = genErr.Cause.Error()
		}
	} else if err.Error() != "" {
		detail = err.Error()
	}
	return GenerationFailedPrefix + " " + detail
}

// ExitCode returns the process exit code matching the error class.
func ExitCode(err error) int {
	var (
		validationErr ValidationError
		configErr     ConfigError
		timeoutErr    TimeoutError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &validationErr):
		return ExitErrorValidation
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// HandleGenerationError prints the user-facing message for err to out and
// returns the matching exit code. A nil error prints nothing.
func HandleGenerationError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(out, "Error: %s\n", UserMessage(err))
	return ExitCode(err)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
