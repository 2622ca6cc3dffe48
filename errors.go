package ashrand

import (
	"fmt"

	"github.com/Borislavv/go-ash-rand/internal/sampler"
)

// ErrInvalidArgument is returned for min > max and for destination buffers
// that cannot hold the requested length. Nothing is written or drawn when it
// is returned.
var ErrInvalidArgument = sampler.ErrInvalidArgument

func checkBuffer[T any](dst []T, n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	case n == 0:
		return nil
	case dst == nil:
		return fmt.Errorf("%w: nil destination for %d words", ErrInvalidArgument, n)
	case n > len(dst):
		return fmt.Errorf("%w: destination holds %d words, %d requested", ErrInvalidArgument, len(dst), n)
	}
	return nil
}
