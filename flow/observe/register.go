// Package observe provides observation tooling for streams: typed hook
// conveniences, inspection operators, and bridges to zap and
// OpenTelemetry.
//
// The hooks system is type-parameterized, so observers must be
// registered with the element type they want to observe:
//
//	ctx, counter := observe.WithCounter[int](ctx)
//	_ = flow.Run(ctx, stream)
//	fmt.Println(counter.Values())
package observe

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/avollmer/coldflow/flow/core"
)

// WithValueHook attaches a value observation hook for type T to the
// context. The callback fires for each value delivered to the consumer.
func WithValueHook[T any](ctx context.Context, callback func(T)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnValue: callback,
	})
}

// WithErrorHook attaches an error observation hook for type T to the
// context. The callback fires when a run ends with an error.
func WithErrorHook[T any](ctx context.Context, callback func(error)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnError: callback,
	})
}

// WithStartHook attaches a run start hook for type T to the context.
func WithStartHook[T any](ctx context.Context, callback func()) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnStart: callback,
	})
}

// WithCompleteHook attaches a run completion hook for type T to the
// context. The callback fires when the run finishes, whether it
// completed, failed, or was cancelled.
func WithCompleteHook[T any](ctx context.Context, callback func()) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnComplete: callback,
	})
}

// Counter provides thread-safe counting of values and errors. A single
// Counter may span several runs on the same context.
type Counter struct {
	values atomic.Int64
	errors atomic.Int64
}

// Values returns the count of values delivered.
func (c *Counter) Values() int64 { return c.values.Load() }

// Errors returns the count of run-terminating errors.
func (c *Counter) Errors() int64 { return c.errors.Load() }

// Total returns the combined count of values and errors.
func (c *Counter) Total() int64 { return c.values.Load() + c.errors.Load() }

// WithCounter attaches counting hooks for type T and returns the
// counter for querying.
func WithCounter[T any](ctx context.Context) (context.Context, *Counter) {
	counter := &Counter{}
	ctx = core.WithHooks(ctx, core.Hooks[T]{
		OnValue: func(T) { counter.values.Add(1) },
		OnError: func(error) { counter.errors.Add(1) },
	})
	return ctx, counter
}

// ErrorCollector collects the terminating errors of runs observed
// through its hook.
type ErrorCollector struct {
	mu     sync.Mutex
	errors []error
}

// Errors returns a copy of all collected errors.
func (c *ErrorCollector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]error, len(c.errors))
	copy(result, c.errors)
	return result
}

// HasErrors reports whether any errors were collected.
func (c *ErrorCollector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors) > 0
}

// Count returns the number of collected errors.
func (c *ErrorCollector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// WithErrorCollector attaches an error collecting hook for type T and
// returns the collector.
func WithErrorCollector[T any](ctx context.Context) (context.Context, *ErrorCollector) {
	collector := &ErrorCollector{}
	ctx = core.WithHooks(ctx, core.Hooks[T]{
		OnError: func(err error) {
			collector.mu.Lock()
			collector.errors = append(collector.errors, err)
			collector.mu.Unlock()
		},
	})
	return ctx, collector
}
