package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdist/edt"
	"github.com/katalvlaran/lvdist/grid"
	"github.com/katalvlaran/lvdist/postproc"
	"github.com/katalvlaran/lvdist/textgrid"
)

// transformOpts holds the command-line flags for the transform command.
// Flags left unset fall back to the config file, then to library defaults.
type transformOpts struct {
	output      string  // output file; stdout when empty
	format      string  // "text" or "csv"
	unreachable string  // "sentinel", "inf" or "clamp"
	infinity    float64 // background cost / sentinel
	workers     int     // goroutines per pass; 0 = GOMAXPROCS
	sqrt        bool    // take square roots of the result
	scale       string  // "lo,hi" min-max rescaling
}

// newTransformCmd creates the transform command.
//
// Input is one grid row per line ('#' feature, '.' background); see package
// textgrid for the accepted characters. With no argument or "-" the grid is
// read from stdin.
func newTransformCmd(root *rootOpts) *cobra.Command {
	def := defaultConfig()
	var opts transformOpts

	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Squared Euclidean distance transform of a text grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.config)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &cfg, &opts); err != nil {
				return err
			}

			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			dist, format, err := runTransform(cmd.Context(), cfg, in)
			if err != nil {
				return err
			}
			return writeOutput(cmd, opts.output, dist, format)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", def.Format, "output format: text, csv")
	cmd.Flags().StringVar(&opts.unreachable, "unreachable", def.Unreachable, "unreachable cells: sentinel, inf, clamp")
	cmd.Flags().Float64Var(&opts.infinity, "infinity", def.Infinity, "background cost and unreachable sentinel")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", def.Workers, "goroutines per pass (0 = all CPUs)")
	cmd.Flags().BoolVar(&opts.sqrt, "sqrt", false, "output Euclidean instead of squared distances")
	cmd.Flags().StringVar(&opts.scale, "scale", "", "rescale finite values onto lo,hi (e.g. 0,255)")

	return cmd
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg *Config, opts *transformOpts) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("unreachable") {
		cfg.Unreachable = opts.unreachable
	}
	if flags.Changed("infinity") {
		cfg.Infinity = opts.infinity
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("sqrt") {
		cfg.Sqrt = opts.sqrt
	}
	if flags.Changed("scale") {
		scale, err := parseScale(opts.scale)
		if err != nil {
			return err
		}
		cfg.Scale = scale
	}
	return cfg.validate()
}

// parseScale parses the --scale flag "lo,hi".
func parseScale(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("--scale %q: want lo,hi", s)
	}
	scale := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("--scale %q: %w", s, err)
		}
		scale[i] = v
	}
	return scale, nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// writeOutput writes dist to path, or to stdout when path is empty. The file
// is created only once the result exists, and removed again if writing fails.
func writeOutput(cmd *cobra.Command, path string, dist *grid.Float, format textgrid.Format) error {
	if path == "" {
		return textgrid.WriteFloat(cmd.OutOrStdout(), dist, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = textgrid.WriteFloat(f, dist, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	loggerFromContext(cmd.Context()).Debug("Wrote result", "path", path, "format", format)
	return nil
}

// runTransform reads a binary grid from in and returns its transform,
// post-processed per cfg, with the output format cfg selects.
func runTransform(ctx context.Context, cfg Config, in io.Reader) (*grid.Float, textgrid.Format, error) {
	logger := loggerFromContext(ctx)
	format, err := textgrid.ParseFormat(cfg.Format)
	if err != nil {
		return nil, 0, err
	}
	opts, err := cfg.options()
	if err != nil {
		return nil, 0, err
	}

	prog := newProgress(logger)
	bin, err := textgrid.ReadBinary(in)
	if err != nil {
		return nil, 0, err
	}
	w, h := bin.Shape()
	prog.step("read", "width", w, "height", h)
	if !bin.Empty() && !edt.HasFeature(bin) {
		logger.Warn("Grid has no feature cells; every cell is unreachable", "policy", cfg.Unreachable)
	}

	dist, err := edt.Binary2DContext(ctx, bin, opts...)
	if err != nil {
		return nil, 0, err
	}
	prog.step("transform", "workers", edt.NewOptions(opts...).Workers(), "unreachable", cfg.Unreachable)

	if cfg.Sqrt || cfg.Scale != nil {
		if dist, err = postprocess(dist, cfg); err != nil {
			return nil, 0, err
		}
		prog.step("postprocess", "sqrt", cfg.Sqrt, "scale", cfg.Scale)
	}
	prog.done(fmt.Sprintf("Transformed %dx%d grid", w, h))

	return dist, format, nil
}

// postprocess applies the optional sqrt and scale steps. Before scaling,
// sentinel cells become +Inf so they land on the top of the range instead of
// squashing every real distance towards lo.
func postprocess(dist *grid.Float, cfg Config) (*grid.Float, error) {
	var err error
	if cfg.Scale != nil {
		if dist, err = postproc.ReplaceUnreachable(dist, cfg.Infinity, math.Inf(1)); err != nil {
			return nil, err
		}
	}
	if cfg.Sqrt {
		if dist, err = postproc.Sqrt(dist); err != nil {
			return nil, err
		}
	}
	if cfg.Scale != nil {
		if dist, err = postproc.MinMaxScale(dist, cfg.Scale[0], cfg.Scale[1]); err != nil {
			return nil, err
		}
	}
	return dist, nil
}
