package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/Borislavv/go-ash-rand/config"
	"github.com/Borislavv/go-ash-rand/internal/shared/bytes"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

// Metered is an engine exposing cumulative counters.
type Metered interface {
	Metrics() (words32, words64, reals, rejected, reseeds uint64)
	SeedValue() uint32
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Random
	logger   *slog.Logger
	engine   Metered
	interval time.Duration
	done     chan struct{}
}

// New starts periodic logging of engine counter deltas when cfg enables
// telemetry. The loop stops on Close or when ctx is done.
func New(ctx context.Context, cfg *config.Random, logger *slog.Logger, engine Metered) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	l := &Logs{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
		logger: logger,
		engine: engine,
		done:   make(chan struct{}),
	}
	if cfg != nil && cfg.Telemetry.Enabled() {
		l.interval = cfg.Telemetry.Interval
	}
	return l.run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

// Close stops the loop and waits for it to exit.
func (l *Logs) Close() error {
	l.cancel()
	<-l.done
	return nil
}

func (l *Logs) run() *Logs {
	if l.interval > 0 {
		s := newSampler(l.engine)
		go l.loop(s, s.snapshot())
	} else {
		close(l.done)
	}
	return l
}

// loop reports deltas against prev, which run takes before New returns.
func (l *Logs) loop(s sampler, prev snapshot) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := s.snapshot()
			d := deltaSnapshot(prev, cur)
			prev = cur

			common := []any{"interval", l.interval.String()}

			l.logger.Info("integer_engine",
				append(common,
					"words32", int64(d.words32),
					"words64", int64(d.words64),
					"refills32", int64(d.words32/blockWords32),
					"refills64", int64(d.words64/blockWords64),
				)...,
			)

			l.logger.Info("real_engine",
				append(common,
					"doubles", int64(d.reals),
					"refills", int64(d.reals/blockReals),
				)...,
			)

			if d.rejected > 0 || d.reseeds > 0 {
				l.logger.Info("sampler",
					append(common,
						"rejected", int64(d.rejected),
						"reseeds", int64(d.reseeds),
						"seed", l.engine.SeedValue(),
					)...,
				)
			}

			l.logger.Info("throughput",
				append(common,
					"generated", bytes.FmtMem(d.generatedBytes()),
				)...,
			)
		}
	}
}
