package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/avollmer/coldflow/flow/core"
)

// WithMeter attaches hooks for type T that count delivered values and
// run-terminating errors on the supplied OpenTelemetry meter. The
// stream name becomes the instrument prefix and a "stream" attribute
// on every measurement.
func WithMeter[T any](ctx context.Context, meter metric.Meter, stream string) (context.Context, error) {
	values, err := meter.Int64Counter(
		stream+".values",
		metric.WithDescription("values delivered to the consumer"),
	)
	if err != nil {
		return ctx, err
	}

	failures, err := meter.Int64Counter(
		stream+".errors",
		metric.WithDescription("runs ended by an error"),
	)
	if err != nil {
		return ctx, err
	}

	base := ctx
	attrs := metric.WithAttributes(attribute.String("stream", stream))

	return core.WithHooks(ctx, core.Hooks[T]{
		OnValue: func(T) { values.Add(base, 1, attrs) },
		OnError: func(error) { failures.Add(base, 1, attrs) },
	}), nil
}
