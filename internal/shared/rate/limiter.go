package rate

import (
	"context"

	"go.uber.org/ratelimit"
)

// Limiter paces block emission. Tokens are produced in the background with a
// small burst buffer so consumers do not stall on the limiter's own sleeps.
type Limiter struct {
	ch    chan struct{}
	l     ratelimit.Limiter
	limit int
}

// NewLimiter returns a limiter emitting limit tokens per second until ctx is
// done. A non-positive limit disables throttling.
func NewLimiter(ctx context.Context, limit int) *Limiter {
	if limit <= 0 {
		return &Limiter{}
	}

	burst := limit / 10
	if burst < 1 {
		burst = 1
	}
	lim := &Limiter{
		limit: limit,
		ch:    make(chan struct{}, burst),
		l:     ratelimit.New(limit),
	}
	go lim.provider(ctx)
	return lim
}

func (l *Limiter) provider(ctx context.Context) {
	defer close(l.ch)
	for {
		l.l.Take()
		select {
		case <-ctx.Done():
			return
		case l.ch <- struct{}{}:
		}
	}
}

// Limit returns tokens per second, zero when unlimited.
func (l *Limiter) Limit() int {
	return l.limit
}

// Take blocks until a token is available. It reports false once ctx is done
// or the provider stopped.
func (l *Limiter) Take(ctx context.Context) bool {
	if l.ch == nil {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case _, ok := <-l.ch:
		return ok
	}
}
