package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/zonebuilder/internal/clockboard"
	"github.com/roach88/zonebuilder/internal/params"
)

// ValidationIssue is one problem found in a parameter file.
type ValidationIssue struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Zones  int               `json:"zones,omitempty"`
	Errors []ValidationIssue `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <params-file>",
		Short: "Validate a clockboard parameter file",
		Long: `Validate a clockboard parameter file (.cue, .yaml or .yml) without
building any geometry.

Every problem is reported, not just the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(path); err != nil {
		return outputValidateError(formatter, ErrCodeNotFound, fmt.Sprintf("params file not found: %s", path))
	}

	issues, p := ValidateParamsFile(path, opts.baseParams())
	if len(issues) > 0 {
		return outputValidationErrors(formatter, issues)
	}

	formatter.VerboseLog("%s: %d segments x %d rings", path, p.Segments, p.RingCount())
	return outputValidateSuccess(formatter, p.ZoneCount())
}

// ValidateParamsFile loads path over base and returns every problem found,
// along with the resolved parameters.
func ValidateParamsFile(path string, base clockboard.Params) ([]ValidationIssue, clockboard.Params) {
	p, err := params.Load(path, base)
	if err != nil {
		issue := ValidationIssue{Code: ErrCodeParamsFile, Field: "file", Message: err.Error()}
		var ce *params.CompileError
		if errors.As(err, &ce) {
			issue.Field = ce.Field
			issue.Message = ce.Message
			issue.Line = ce.Line
		}
		return []ValidationIssue{issue}, p
	}

	var issues []ValidationIssue
	for _, ge := range clockboard.Validate(p) {
		issues = append(issues, ValidationIssue{
			Code:    ErrorCode(ge, ErrCodeGeneric),
			Field:   ge.Field,
			Message: ge.Message,
		})
	}
	return issues, p
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, zones int) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Zones: zones})
	}

	fmt.Fprintf(formatter.Writer, "✓ Parameters valid (%d zones)\n", zones)
	return nil
}

// outputValidateError outputs a single command-level error.
func outputValidateError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, issues []ValidationIssue) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:  false,
				Errors: issues,
			},
			Error: &CLIError{
				Code:    issues[0].Code,
				Message: issues[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(issues)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, issue := range issues {
		if issue.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", issue.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s %s: %s\n\n", issue.Code, issue.Field, issue.Message)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(issues)))
}
