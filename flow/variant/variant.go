// Package variant provides a tagged value type for streams whose
// elements do not share a single Go type. Payloads travel through the
// pipeline as Value and are classified by Kind, so one stream can carry
// integers, strings, and anything else side by side. Build a Value with
// Of or a kind constructor and read it back with As or Any.
package variant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avollmer/coldflow/flow/core"
	"github.com/avollmer/coldflow/flow/filter"
)

// ErrKindMismatch terminates a strict extraction when a payload is not
// of the requested type.
var ErrKindMismatch = errors.New("variant: payload type mismatch")

// Kind is a coarse label for a Value's payload. The zero Kind is
// KindOpaque, matching the zero Value.
type Kind int

const (
	KindOpaque Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindTime:
		return "time"
	default:
		return "opaque"
	}
}

// Value is a tagged payload. It is immutable: build one with Of and
// read it back with As or Any.
type Value struct {
	kind Kind
	data any
}

// Of wraps a payload in a Value, classifying it by its dynamic type.
// Integer and float widths collapse into KindInt and KindFloat; any
// unrecognized type becomes KindOpaque. A Value passes through
// unchanged, so wrapping is idempotent.
func Of(payload any) Value {
	switch p := payload.(type) {
	case Value:
		return p
	case bool:
		return Value{kind: KindBool, data: payload}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Value{kind: KindInt, data: payload}
	case float32, float64:
		return Value{kind: KindFloat, data: payload}
	case string:
		return Value{kind: KindString, data: payload}
	case []byte:
		return Value{kind: KindBytes, data: payload}
	case time.Time:
		return Value{kind: KindTime, data: payload}
	default:
		return Value{kind: KindOpaque, data: payload}
	}
}

// Bool builds a KindBool Value.
func Bool(b bool) Value { return Value{kind: KindBool, data: b} }

// Int builds a KindInt Value.
func Int(i int) Value { return Value{kind: KindInt, data: i} }

// Float builds a KindFloat Value.
func Float(f float64) Value { return Value{kind: KindFloat, data: f} }

// String builds a KindString Value.
func String(s string) Value { return Value{kind: KindString, data: s} }

// Bytes builds a KindBytes Value.
func Bytes(b []byte) Value { return Value{kind: KindBytes, data: b} }

// Time builds a KindTime Value.
func Time(t time.Time) Value { return Value{kind: KindTime, data: t} }

// Opaque wraps a payload without classifying it.
func Opaque(payload any) Value { return Value{kind: KindOpaque, data: payload} }

// Kind returns the payload's classification.
func (v Value) Kind() Kind { return v.kind }

// Is reports whether the payload has the given classification.
func (v Value) Is(k Kind) bool { return v.kind == k }

// Any returns the payload as stored.
func (v Value) Any() any { return v.data }

func (v Value) String() string {
	return fmt.Sprintf("%v", v.data)
}

// As returns the payload when its dynamic type is exactly T.
func As[T any](v Value) (T, bool) {
	payload, ok := v.data.(T)
	return payload, ok
}

// Config adjusts how extraction operators treat payloads that do not
// match the requested type.
type Config struct {
	// Strict makes Values terminate the stream with ErrKindMismatch
	// instead of silently dropping mismatched payloads.
	Strict bool
}

// Mixed creates a Stream of Values from arbitrary payloads, in order.
func Mixed(payloads ...any) core.Stream[Value] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[Value] {
		out := make(chan core.Result[Value])
		go func() {
			defer close(out)
			for _, p := range payloads {
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(Of(p)):
				}
			}
		}()
		return out
	})
}

// OfKind creates a Transformer that keeps only Values of the given
// kind.
func OfKind(kind Kind) core.Transformer[Value, Value] {
	return filter.Where(func(v Value) bool {
		return v.Kind() == kind
	})
}

// Values creates a Transformer that extracts payloads of type T from a
// Value stream. Mismatched payloads are dropped, unless a Config with
// Strict set is attached to the context, in which case the first
// mismatch terminates the stream with ErrKindMismatch.
func Values[T any]() core.Transformer[Value, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[Value]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)

			var strict bool
			if cfg, ok := core.GetConfig[Config](ctx); ok {
				strict = cfg.Strict
			}

			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[T](res.Error()):
					}
					return
				}

				payload, ok := As[T](res.Value())
				if !ok {
					if !strict {
						continue
					}
					err := fmt.Errorf("%w: %s payload %v is not %T",
						ErrKindMismatch, res.Value().Kind(), res.Value().Any(), *new(T))
					select {
					case <-ctx.Done():
					case out <- core.Err[T](err):
					}
					return
				}

				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(payload):
				}
			}
		}()
		return out
	})
}
