package core

import (
	"context"
	"errors"
)

// Terminal functions are sinks that start a Run: they consume the stream's
// data and produce a final result, such as a slice of values, the first
// value, or just the side effects of draining. Each call starts exactly
// one Run; calling a terminal again re-runs the producer from scratch.
//
// Every driver derives a cancellable context for its Run. Returning early
// (on error, on a satisfied driver, or on a consumer abort) cancels that
// context, which every upstream goroutine observes at its next suspension
// point. External cancellation surfaces as the run's terminating error.

// errDriveStop signals a deliberate, successful early stop by a driver.
var errDriveStop = errors.New("stop consuming")

// drive is the shared consumption loop. It invokes the context's typed
// hooks around the run and hands each value to visit. A visit error ends
// the run; errDriveStop ends it successfully.
func drive[OUT any](ctx context.Context, in Stream[OUT], visit func(OUT) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hooks := newHookInvoker[OUT](ctx)
	hooks.invokeStart()
	defer hooks.invokeComplete()

	for res := range in.Emit(ctx) {
		if res.IsError() {
			hooks.invokeError(res.Error())
			return res.Error()
		}
		hooks.invokeValue(res.Value())

		if err := visit(res.Value()); err != nil {
			if errors.Is(err, errDriveStop) {
				return nil
			}
			hooks.invokeError(err)
			return err
		}
	}

	// The channel also closes when the run's context is cancelled; report
	// that as the run's outcome rather than as a clean completion.
	if ctx.Err() != nil {
		err := context.Cause(ctx)
		hooks.invokeError(err)
		return err
	}
	return nil
}

// Each drives every emission through fn, honoring backpressure: the
// producer stays suspended until fn returns. A non-nil error from fn
// cancels the run and is returned.
func Each[OUT any](ctx context.Context, in Stream[OUT], fn func(OUT) error) error {
	return drive(ctx, in, fn)
}

// Run drains the stream for its side effects.
func Run[OUT any](ctx context.Context, in Stream[OUT]) error {
	return drive(ctx, in, func(OUT) error { return nil })
}

// Slice collects every value into a slice, in emission order.
func Slice[OUT any](ctx context.Context, in Stream[OUT]) ([]OUT, error) {
	var result []OUT
	err := drive(ctx, in, func(v OUT) error {
		result = append(result, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Set collects every distinct value, preserving first-seen order.
// Unlike DistinctUntilChanged this deduplicates across the whole run,
// not just adjacent repeats.
func Set[OUT comparable](ctx context.Context, in Stream[OUT]) ([]OUT, error) {
	seen := make(map[OUT]struct{})
	var result []OUT
	err := drive(ctx, in, func(v OUT) error {
		if _, dup := seen[v]; dup {
			return nil
		}
		seen[v] = struct{}{}
		result = append(result, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// First returns the first value and cancels the run.
// Returns ErrEmptyStream if the stream completes without a value.
func First[OUT any](ctx context.Context, in Stream[OUT]) (OUT, error) {
	return FirstMatch(ctx, in, func(OUT) bool { return true })
}

// FirstMatch returns the first value satisfying pred and cancels the run.
// Returns ErrEmptyStream if the stream completes without a match.
func FirstMatch[OUT any](ctx context.Context, in Stream[OUT], pred func(OUT) bool) (OUT, error) {
	var (
		match OUT
		found bool
	)
	err := drive(ctx, in, func(v OUT) error {
		if !pred(v) {
			return nil
		}
		match = v
		found = true
		return errDriveStop
	})
	switch {
	case err != nil:
		var zero OUT
		return zero, err
	case !found:
		var zero OUT
		return zero, ErrEmptyStream
	default:
		return match, nil
	}
}

// Last waits for full completion and returns the last value observed.
// Returns ErrEmptyStream if the stream completes without a value.
func Last[OUT any](ctx context.Context, in Stream[OUT]) (OUT, error) {
	var (
		last  OUT
		found bool
	)
	err := drive(ctx, in, func(v OUT) error {
		last = v
		found = true
		return nil
	})
	switch {
	case err != nil:
		var zero OUT
		return zero, err
	case !found:
		var zero OUT
		return zero, ErrEmptyStream
	default:
		return last, nil
	}
}

// Single expects exactly one value. A second value cancels the run and
// returns ErrMultipleValues; an empty stream returns ErrEmptyStream.
func Single[OUT any](ctx context.Context, in Stream[OUT]) (OUT, error) {
	var (
		single OUT
		found  bool
	)
	err := drive(ctx, in, func(v OUT) error {
		if found {
			return ErrMultipleValues
		}
		single = v
		found = true
		return nil
	})
	switch {
	case err != nil:
		var zero OUT
		return zero, err
	case !found:
		var zero OUT
		return zero, ErrEmptyStream
	default:
		return single, nil
	}
}

// Fold sequentially reduces all values with fn, starting from initial,
// and returns the final accumulator.
func Fold[OUT, ACC any](ctx context.Context, in Stream[OUT], initial ACC, fn func(ACC, OUT) ACC) (ACC, error) {
	acc := initial
	err := drive(ctx, in, func(v OUT) error {
		acc = fn(acc, v)
		return nil
	})
	if err != nil {
		var zero ACC
		return zero, err
	}
	return acc, nil
}
