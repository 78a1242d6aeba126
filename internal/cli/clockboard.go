package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/zonebuilder/internal/clockboard"
	"github.com/roach88/zonebuilder/internal/params"
	"github.com/roach88/zonebuilder/internal/sequence"
)

// ClockboardOptions holds flags for the clockboard command.
type ClockboardOptions struct {
	*RootOptions
	Lat        float64
	Lon        float64
	Distances  []float64
	Rings      int
	Scale      float64
	Segments   int
	ArcStep    float64
	Precision  int
	ParamsFile string
	Output     string
}

// ClockboardResult is the JSON data of a clockboard run.
type ClockboardResult struct {
	Zones   int             `json:"zones"`
	Digest  string          `json:"digest"`
	Bytes   int             `json:"bytes"`
	Output  string          `json:"output,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewClockboardCommand creates the clockboard command.
func NewClockboardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClockboardOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clockboard",
		Short: "Build a clockboard around a point",
		Long: `Build the clockboard zones around a center point and print the
GeoJSON payload.

Parameters come from environment defaults, then the --params file
(.cue, .yaml or .yml), then flags. --distances and --rings/--scale are
mutually exclusive; --rings uses triangular spacing (1, 3, 6, 10, ... times
--scale meters).

Exit codes:
  0 - Clockboard written
  1 - Parameters rejected
  2 - Command error (missing flags, unreadable files, etc.)

Examples:
  zonebuilder clockboard --lat 53.8 --lon -1.5
  zonebuilder clockboard --lat 53.8 --lon -1.5 --distances 500,1500 --segments 8
  zonebuilder clockboard --params leeds.cue -o leeds.geojson`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClockboard(opts, cmd)
		},
	}

	cfg := rootOpts.Config
	cmd.Flags().Float64Var(&opts.Lat, "lat", 0, "center latitude in degrees")
	cmd.Flags().Float64Var(&opts.Lon, "lon", 0, "center longitude in degrees")
	cmd.Flags().Float64SliceVar(&opts.Distances, "distances", nil, "ring boundaries in meters, strictly increasing")
	cmd.Flags().IntVar(&opts.Rings, "rings", clockboard.DefaultRings, "number of triangular-spaced rings")
	cmd.Flags().Float64Var(&opts.Scale, "scale", clockboard.DefaultRingScale, "meters per triangular unit")
	cmd.Flags().IntVar(&opts.Segments, "segments", cfg.Segments, "number of sectors")
	cmd.Flags().Float64Var(&opts.ArcStep, "arc-step", cfg.ArcStepDegrees, "max degrees between arc vertices")
	cmd.Flags().IntVar(&opts.Precision, "precision", cfg.Precision, "coordinate decimal places")
	cmd.Flags().StringVar(&opts.ParamsFile, "params", "", "parameter file (.cue, .yaml, .yml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the payload to this file")

	cmd.MarkFlagsMutuallyExclusive("distances", "rings")
	cmd.MarkFlagsMutuallyExclusive("distances", "scale")

	return cmd
}

func runClockboard(opts *ClockboardOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	p, err := resolveParams(opts, cmd)
	if err != nil {
		return err
	}
	formatter.VerboseLog("Building %d x %d clockboard around %s", p.Segments, p.RingCount(), p.Center)

	out, err := opts.newEngine().Clockboard(p)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, err)
	}

	result := ClockboardResult{Zones: out.Zones, Digest: out.Digest, Bytes: len(out.Payload)}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, out.Payload, 0644); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, err)
		}
		result.Output = opts.Output
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "✓ Wrote %d zones to %s\n", result.Zones, result.Output)
		fmt.Fprintf(formatter.Writer, "  digest: %s\n", result.Digest)
		return nil
	}

	if formatter.Format == "json" {
		result.Payload = out.Payload
		return formatter.Success(result)
	}
	formatter.VerboseLog("digest: %s", out.Digest)
	_, err = fmt.Fprintln(formatter.Writer, string(out.Payload))
	return err
}

// resolveParams layers environment defaults, the params file and changed
// flags, in that order.
func resolveParams(opts *ClockboardOptions, cmd *cobra.Command) (clockboard.Params, error) {
	formatter := opts.formatter(cmd)
	flags := cmd.Flags()
	p := opts.baseParams()

	if opts.ParamsFile != "" {
		if _, err := os.Stat(opts.ParamsFile); err != nil {
			msg := fmt.Sprintf("params file not found: %s", opts.ParamsFile)
			_ = formatter.Error(ErrCodeNotFound, msg)
			return p, WrapExitError(ExitCommandError, msg, err)
		}
		loaded, err := params.Load(opts.ParamsFile, p)
		if err != nil {
			return p, formatter.Fail(ExitCommandError, ErrCodeParamsFile, err)
		}
		formatter.VerboseLog("Loaded params from %s", opts.ParamsFile)
		p = loaded
	} else if !flags.Changed("lat") || !flags.Changed("lon") {
		msg := "--lat and --lon are required unless --params is given"
		_ = formatter.Error(ErrCodeUsage, msg)
		return p, NewExitError(ExitCommandError, msg)
	}

	if flags.Changed("lat") {
		p.Center.Lat = opts.Lat
	}
	if flags.Changed("lon") {
		p.Center.Lon = opts.Lon
	}
	switch {
	case flags.Changed("distances"):
		p.Distances = opts.Distances
	case flags.Changed("rings") || flags.Changed("scale"):
		distances, err := sequence.RingDistances(opts.Rings, opts.Scale)
		if err != nil {
			return p, formatter.Fail(ExitFailure, ErrCodeGeneric, err)
		}
		p.Distances = distances
	}
	if flags.Changed("segments") {
		p.Segments = opts.Segments
	}
	if flags.Changed("arc-step") {
		p.ArcStepDegrees = opts.ArcStep
	}
	if flags.Changed("precision") {
		p.Precision = opts.Precision
	}
	return p, nil
}
