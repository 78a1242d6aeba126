package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/zonebuilder/internal/clockboard"
	"github.com/roach88/zonebuilder/internal/config"
	"github.com/roach88/zonebuilder/internal/engine"
	"github.com/roach88/zonebuilder/internal/geo"
	"github.com/roach88/zonebuilder/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Config supplies environment defaults.
	Config config.Config

	// Logger is built in PersistentPreRunE and writes to the command's
	// stderr. --verbose forces debug level.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the zonebuilder CLI.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg, Logger: logging.Discard()}

	cmd := &cobra.Command{
		Use:   "zonebuilder",
		Short: "zonebuilder - clockboard zoning",
		Long:  "Divide the area around a point into clockboard zones: concentric rings cut into equal sectors.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			level := opts.Config.LogLevel
			if opts.Verbose {
				level = "debug"
			}
			opts.Logger = logging.New(cmd.ErrOrStderr(), logging.Config{
				Level:  level,
				Format: opts.Config.LogFormat,
			})
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewClockboardCommand(opts))
	cmd.AddCommand(NewTriangularCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// newEngine returns an engine logging through opts.Logger with the
// configured sampling defaults.
func (opts *RootOptions) newEngine() *engine.Engine {
	return engine.New(
		engine.WithLogger(opts.Logger),
		engine.WithArcStep(opts.Config.ArcStepDegrees),
		engine.WithPrecision(opts.Config.Precision),
	)
}

// baseParams returns the parameters every clockboard starts from before
// parameter files and flags are applied.
func (opts *RootOptions) baseParams() clockboard.Params {
	p := clockboard.DefaultParams(geo.GeoPoint{})
	p.Segments = opts.Config.Segments
	p.ArcStepDegrees = opts.Config.ArcStepDegrees
	p.Precision = opts.Config.Precision
	return p
}

// formatter returns the output formatter for cmd.
func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}
