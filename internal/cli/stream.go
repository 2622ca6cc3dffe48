package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	ashrand "github.com/Borislavv/go-ash-rand"
	"github.com/Borislavv/go-ash-rand/config"
	"github.com/Borislavv/go-ash-rand/internal/shared/bytes"
	"github.com/Borislavv/go-ash-rand/internal/shared/rate"
	"github.com/Borislavv/go-ash-rand/internal/telemetry"
)

type streamOptions struct {
	rate      int
	count     int
	blockSize int
	telemetry time.Duration
}

// NewStreamCommand creates the stream command.
func NewStreamCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &streamOptions{}

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Write little-endian 32-bit words to stdout in blocks",
		Long: `Write the 32-bit word stream as raw little-endian bytes.

Output is written in blocks of --block-size words, at most --rate blocks per
second (0 means unthrottled), until --count blocks were written (0 means
until interrupted). Logs and telemetry go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.rate, "rate", 0, "blocks per second, 0 for unthrottled")
	cmd.Flags().IntVar(&opts.count, "count", 0, "number of blocks, 0 for unbounded")
	cmd.Flags().IntVar(&opts.blockSize, "block-size", ashrand.BlockUint32, "words per block")
	cmd.Flags().DurationVar(&opts.telemetry, "telemetry-interval", 0, "interval of counter logs, overrides config")

	return cmd
}

func runStream(rootOpts *RootOptions, opts *streamOptions, cmd *cobra.Command) error {
	if opts.blockSize <= 0 {
		return fmt.Errorf("block size must be positive, got %d", opts.blockSize)
	}
	if opts.count < 0 {
		return fmt.Errorf("count must not be negative, got %d", opts.count)
	}

	cfg, err := rootOpts.loadConfig(cmd)
	if err != nil {
		return err
	}
	if opts.telemetry > 0 {
		cfg.Telemetry = &config.TelemetryCfg{Interval: opts.telemetry}
	}
	logger := newSlogLogger(newLogger(rootOpts.LogFormat, rootOpts.Verbose, cmd.ErrOrStderr()))
	r := ashrand.New(cfg, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	logs := telemetry.New(ctx, cfg, logger, r)
	defer func() { _ = logs.Close() }()

	limiter := rate.NewLimiter(ctx, opts.rate)
	logger.Info("stream started",
		"seed", r.SeedValue(),
		"block_words", opts.blockSize,
		"rate", limiter.Limit(),
		"blocks", opts.count,
		"bulk", r.Bulk(),
	)

	out := cmd.OutOrStdout()
	words := make([]uint32, opts.blockSize)
	buf := make([]byte, 0, 4*opts.blockSize)

	var written uint64
	for block := 0; opts.count == 0 || block < opts.count; block++ {
		if !limiter.Take(ctx) {
			break
		}
		if err = r.FillUint32(words, len(words)); err != nil {
			return err
		}
		buf = bytes.AppendUint32s(buf[:0], words)
		if _, err = out.Write(buf); err != nil {
			return fmt.Errorf("write block %d: %w", block, err)
		}
		written += uint64(len(buf))
	}

	logger.Info("stream finished", "written", bytes.FmtMem(written))
	return nil
}
