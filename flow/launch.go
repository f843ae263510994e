package flow

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/avollmer/coldflow/flow/core"
)

// Handle is a reference to a launched run. It can be awaited, cancelled,
// or polled through Done. Handles are not reused; every Launch call
// starts a fresh run of the stream description.
type Handle[T any] struct {
	id     uuid.UUID
	cancel context.CancelCauseFunc
	done   chan struct{}
	err    error // write-once before done closes
}

// Launch starts a run of the stream without blocking the caller. Each
// value is handed to fn under the usual backpressure rules; a nil fn
// drains the stream for its side effects.
//
// Independent launches of the same stream description run fully
// independently: each re-invokes the producer from scratch.
func Launch[T any](ctx context.Context, stream Stream[T], fn func(T) error) *Handle[T] {
	if fn == nil {
		fn = func(T) error { return nil }
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	h := &Handle[T]{
		id:     uuid.New(),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		h.err = core.Each(runCtx, stream, fn)
		cancel(nil)
	}()

	return h
}

// ID identifies this run, e.g. for correlating log lines across
// concurrently launched runs.
func (h *Handle[T]) ID() uuid.UUID {
	return h.id
}

// Await blocks until the run finishes and returns its outcome: nil on
// completion, the terminating error otherwise. ctx bounds the wait, not
// the run itself; an expired wait leaves the run going.
func (h *Handle[T]) Await(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-h.done:
		return h.err
	}
}

// Cancel requests cooperative cancellation. The run observes it at its
// next suspension point; the outcome reported by Await becomes
// ErrLaunchCancelled unless the run had already finished.
func (h *Handle[T]) Cancel() {
	h.cancel(core.ErrLaunchCancelled)
}

// Done is closed when the run has finished, for select-based waiting.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Err reports the run's outcome. It returns nil while the run is still
// going; read it after Done is closed.
func (h *Handle[T]) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Group drives several streams concurrently, handing every value to fn,
// and waits for all of them. The first terminating error cancels the
// remaining runs at their next suspension points and is returned.
func Group[T any](ctx context.Context, fn func(T) error, streams ...Stream[T]) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, stream := range streams {
		g.Go(func() error {
			return core.Each(ctx, stream, fn)
		})
	}
	return g.Wait()
}
