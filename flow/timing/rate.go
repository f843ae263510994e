package timing

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/avollmer/coldflow/flow/core"
)

// RateLimit creates a Transformer that allows at most n values per the
// specified duration. The first n values pass immediately and later
// ones wait for the token bucket to refill. A terminating error is
// forwarded without waiting.
func RateLimit[T any](n int, per time.Duration) core.Transformer[T, T] {
	if n <= 0 {
		n = 1
	}
	if per <= 0 {
		per = time.Second
	}

	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			limiter := rate.NewLimiter(rate.Limit(float64(n)/per.Seconds()), n)

			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}

				if err := limiter.Wait(ctx); err != nil {
					return
				}

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}()
		return out
	})
}
