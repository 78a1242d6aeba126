package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// SequenceResult is the JSON data of a triangular run.
type SequenceResult struct {
	N        int       `json:"n"`
	Sequence []float64 `json:"sequence"`
}

// NewTriangularCommand creates the triangular command.
func NewTriangularCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triangular <n>",
		Short: "Print the first n triangular numbers",
		Long: `Print T(0)..T(n-1) where T(k) = k(k+1)/2.

n must be a whole number >= 0.

Examples:
  zonebuilder triangular 5
  zonebuilder triangular 5 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTriangular(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runTriangular(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	n, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		msg := fmt.Sprintf("n must be a number, got %q", arg)
		_ = formatter.Error(ErrCodeUsage, msg)
		return NewExitError(ExitCommandError, msg)
	}

	seq, err := opts.newEngine().GenerateTriangularSequence(n)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(SequenceResult{N: len(seq), Sequence: seq})
	}

	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	_, err = fmt.Fprintln(formatter.Writer, strings.Join(parts, " "))
	return err
}
