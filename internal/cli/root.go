package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	ashrand "github.com/Borislavv/go-ash-rand"
	"github.com/Borislavv/go-ash-rand/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Seed      uint32
	Config    string
	FillMode  string
	LogFormat string // "console" | "json"
	Verbose   bool
}

// NewRootCommand creates the root command of the ashrand CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ashrand",
		Short: "Reproducible random streams",
		Long: `Generate reproducible pseudo-random streams.

Every command starts from the configured seed (12345 unless overridden), so
the same invocation always prints the same values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidLogFormat(opts.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be console or json", opts.LogFormat)
			}
			return nil
		},
	}

	cmd.PersistentFlags().Uint32Var(&opts.Seed, "seed", config.DefaultSeed, "engine seed")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.FillMode, "fill-mode", "", "fill path (auto|bulk|scalar), overrides config")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "console", "log format (console|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(NewWordsCommand(opts))
	cmd.AddCommand(NewUniformCommand(opts))
	cmd.AddCommand(NewNormalCommand(opts))
	cmd.AddCommand(NewRangeCommand(opts))
	cmd.AddCommand(NewStreamCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// loadConfig merges the config file with flags that were set explicitly.
func (opts *RootOptions) loadConfig(cmd *cobra.Command) (*config.Random, error) {
	cfg := &config.Random{}
	if opts.Config != "" {
		loaded, err := config.LoadConfig(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || cfg.Seed == nil {
		seed := opts.Seed
		cfg.Seed = &seed
	}
	if flags.Changed("fill-mode") {
		cfg.FillMode = config.FillMode(opts.FillMode)
	}
	if err := cfg.AdjustConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// engine builds the configured engine and the logger it reports through.
func (opts *RootOptions) engine(cmd *cobra.Command) (*ashrand.Rand, *config.Random, *slog.Logger, error) {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newSlogLogger(newLogger(opts.LogFormat, opts.Verbose, cmd.ErrOrStderr()))
	return ashrand.New(cfg, logger), cfg, logger, nil
}
