package observe

import (
	"context"

	"github.com/avollmer/coldflow/flow/core"
)

// Spy creates a Transformer that lets an inspector see every result,
// including a terminating error, without modifying the flow. Unlike Tap
// it sees the full Result.
func Spy[T any](inspector func(core.Result[T])) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)

			for res := range in {
				if inspector != nil {
					inspector(res)
				}

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
				if res.IsError() {
					return
				}
			}
		}()
		return out
	})
}

// Tap creates a Transformer that runs a side effect for each value and
// passes it on unchanged. A terminating error is forwarded untouched.
func Tap[T any](fn func(T)) core.Transformer[T, T] {
	return Spy(func(res core.Result[T]) {
		if fn != nil && !res.IsError() {
			fn(res.Value())
		}
	})
}
