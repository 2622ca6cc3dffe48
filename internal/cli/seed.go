package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Borislavv/go-ash-rand/internal/shared/random"
)

type seedOptions struct {
	keys  []string
	fresh int
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Derive per-key seeds or draw fresh ones",
		Long: `Print seeds, one per line.

With --key, each key yields a stable child seed of --seed, so one experiment
seed fans out into independent per-component streams. With --fresh N, N
distinct non-reproducible seeds are printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringSliceVar(&opts.keys, "key", nil, "keys to derive seeds for")
	cmd.Flags().IntVar(&opts.fresh, "fresh", 0, "number of fresh seeds")

	return cmd
}

func runSeed(rootOpts *RootOptions, opts *seedOptions, cmd *cobra.Command) error {
	if opts.fresh < 0 {
		return fmt.Errorf("fresh must not be negative, got %d", opts.fresh)
	}
	if len(opts.keys) == 0 && opts.fresh == 0 {
		return fmt.Errorf("either --key or --fresh is required")
	}
	cfg, err := rootOpts.loadConfig(cmd)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, key := range opts.keys {
		fmt.Fprintf(w, "%s\t%d\n", key, random.DeriveSeed(cfg.SeedValue(), key))
	}
	for _, s := range random.NewSeeds(opts.fresh) {
		_, _ = w.WriteString(strconv.FormatUint(uint64(s), 10))
		_ = w.WriteByte('\n')
	}
	return w.Flush()
}
