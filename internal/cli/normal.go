package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

type normalOptions struct {
	count  int
	mean   float64
	stddev float64
	polar  bool
}

// NewNormalCommand creates the normal command.
func NewNormalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &normalOptions{}

	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Print normally distributed doubles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormal(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 10, "number of values")
	cmd.Flags().Float64Var(&opts.mean, "mean", 0, "mean")
	cmd.Flags().Float64Var(&opts.stddev, "stddev", 1, "standard deviation")
	cmd.Flags().BoolVar(&opts.polar, "polar", false, "use the polar method instead of the ziggurat")

	return cmd
}

func runNormal(rootOpts *RootOptions, opts *normalOptions, cmd *cobra.Command) error {
	if opts.count < 0 {
		return fmt.Errorf("count must not be negative, got %d", opts.count)
	}
	if opts.stddev < 0 || math.IsNaN(opts.stddev) {
		return fmt.Errorf("stddev must not be negative, got %v", opts.stddev)
	}
	r, _, _, err := rootOpts.engine(cmd)
	if err != nil {
		return err
	}

	values := make([]float64, opts.count)
	for i := range values {
		if opts.polar {
			values[i] = r.NormalPolar(opts.mean, opts.stddev)
		} else {
			values[i] = r.Normal(opts.mean, opts.stddev)
		}
	}
	return writeFloats(cmd, values)
}
