package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	ashrand "github.com/Borislavv/go-ash-rand"
)

var intervals = map[string]ashrand.Interval{
	"co":   ashrand.CloseOpen,
	"oc":   ashrand.OpenClose,
	"oo":   ashrand.OpenOpen,
	"c1o2": ashrand.Close1Open2,
}

type uniformOptions struct {
	count    int
	interval string
}

// NewUniformCommand creates the uniform command.
func NewUniformCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &uniformOptions{}

	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "Print uniform doubles, one per line",
		Long: `Print uniform doubles in the chosen interval:
  co    [0,1)
  oc    (0,1]
  oo    (0,1)
  c1o2  [1,2)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUniform(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 10, "number of values")
	cmd.Flags().StringVar(&opts.interval, "interval", "co", "interval (co|oc|oo|c1o2)")

	return cmd
}

func runUniform(rootOpts *RootOptions, opts *uniformOptions, cmd *cobra.Command) error {
	iv, ok := intervals[opts.interval]
	if !ok {
		return fmt.Errorf("invalid interval %q: must be co, oc, oo or c1o2", opts.interval)
	}
	if opts.count < 0 {
		return fmt.Errorf("count must not be negative, got %d", opts.count)
	}
	r, _, _, err := rootOpts.engine(cmd)
	if err != nil {
		return err
	}

	buf := make([]float64, opts.count)
	if err = r.FillFloat64(buf, len(buf), iv); err != nil {
		return err
	}
	return writeFloats(cmd, buf)
}

// writeFloats prints shortest round-trip decimals, one per line.
func writeFloats(cmd *cobra.Command, values []float64) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	var line []byte
	for _, v := range values {
		line = strconv.AppendFloat(line[:0], v, 'g', -1, 64)
		line = append(line, '\n')
		_, _ = w.Write(line)
	}
	return w.Flush()
}
