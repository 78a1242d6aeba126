package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/roach88/zonebuilder/internal/geoerr"
	"github.com/roach88/zonebuilder/internal/params"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Clockboard built, sequence printed or scenarios passed
	ExitFailure      = 1 // Engine rejected the input, or a scenario failed
	ExitCommandError = 2 // Bad flags, missing files, unwritable output
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeUsage       = "E008" // Missing or conflicting flags

	ErrCodeParamsFile        = "E100" // Parameter file could not be resolved
	ErrCodeInvalidInput      = "E101" // Parameters rejected as INVALID_INPUT
	ErrCodeNumericDegeneracy = "E102" // Geometry produced non-finite coordinates
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Verbose output; defaults to Writer
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses. Kind and Field are set
// for engine and parameter file errors.
type CLIError struct {
	Code    string            `json:"code"`
	Kind    string            `json:"kind,omitempty"`
	Field   string            `json:"field,omitempty"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorCode maps an engine error to its CLI error code, or fallback when
// err carries no engine code.
func ErrorCode(err error, fallback string) string {
	switch geoerr.CodeOf(err) {
	case geoerr.InvalidInput:
		return ErrCodeInvalidInput
	case geoerr.NumericDegeneracy:
		return ErrCodeNumericDegeneracy
	default:
		return fallback
	}
}

// NewCLIError describes err for output. geoerr and params errors keep their
// field and details; anything else is reported under fallback.
func NewCLIError(err error, fallback string) *CLIError {
	var ge *geoerr.Error
	if errors.As(err, &ge) {
		return &CLIError{
			Code:    ErrorCode(ge, fallback),
			Kind:    string(ge.Code),
			Field:   ge.Field,
			Message: ge.Message,
			Details: ge.Details,
		}
	}

	var ce *params.CompileError
	if errors.As(err, &ce) {
		out := &CLIError{
			Code:    ErrCodeParamsFile,
			Field:   ce.Field,
			Message: ce.Message,
		}
		if ce.File != "" {
			out.Details = map[string]string{"file": ce.File}
			if ce.Line > 0 {
				out.Details["line"] = fmt.Sprint(ce.Line)
			}
		}
		return out
	}

	return &CLIError{Code: fallback, Message: err.Error()}
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs a command-level error that has no underlying engine error.
func (f *OutputFormatter) Error(code, message string) error {
	return f.write(&CLIError{Code: code, Message: message})
}

// Fail reports err and returns it wrapped with exitCode. Engine and params
// errors are reported under their own code; others under fallback.
func (f *OutputFormatter) Fail(exitCode int, fallback string, err error) *ExitError {
	ce := NewCLIError(err, fallback)
	_ = f.write(ce)
	return WrapExitError(exitCode, ce.Code, err)
}

func (f *OutputFormatter) write(ce *CLIError) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "error", Error: ce})
	}

	if ce.Field != "" {
		fmt.Fprintf(f.Writer, "Error [%s]: %s: %s\n", ce.Code, ce.Field, ce.Message)
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", ce.Code, ce.Message)
	}
	if f.Verbose && (ce.Kind != "" || len(ce.Details) > 0) {
		if ce.Kind != "" {
			fmt.Fprintf(f.Writer, "  kind: %s\n", ce.Kind)
		}
		keys := make([]string, 0, len(ce.Details))
		for k := range ce.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(f.Writer, "  %s: %s\n", k, ce.Details[k])
		}
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled. Messages
// go to ErrWriter so a payload on Writer stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
