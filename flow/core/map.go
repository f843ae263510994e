package core

import "context"

// Mapper defines a function that maps one input value to one output value.
// It represents a transformation that maintains the cardinality of the flow
// (one input item produces one output item).
// The mapper function is at the lowest level of abstraction in the flow
// processing pipeline. It answers the question: "What is done to each item in the flow?"
type Mapper[IN, OUT any] func(IN) (OUT, error)

func Map[IN, OUT any](mapFunc func(IN) (OUT, error)) Mapper[IN, OUT] {
	return mapFunc
}

// Apply transforms a stream using this Mapper. Each output is handed over
// on an unbuffered channel, so the stage holds at most one mapped value and
// waits for the consumer before pulling the next input. A mapping failure
// (or panic) emits the error downstream and ends the stage without
// consuming further upstream values.
func (m Mapper[IN, OUT]) Apply(ctx context.Context, s Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) <-chan Result[OUT] {
		out := make(chan Result[OUT])
		go func() {
			defer close(out)
			for resIn := range s.Emit(ctx) {
				resOut := m.mapResult(resIn)
				select {
				case <-ctx.Done():
					return
				case out <- resOut:
				}
				if resOut.IsError() {
					return
				}
			}
		}()
		return out
	})
}

func (m Mapper[IN, OUT]) mapResult(res Result[IN]) (out Result[OUT]) {
	defer func() {
		if r := recover(); r != nil {
			out = Err[OUT](NewPanicError(r))
		}
	}()

	if res.IsError() {
		return Err[OUT](res.Error())
	}
	value, err := m(res.Value())
	if err != nil {
		return Err[OUT](err)
	}
	return Ok(value)
}

// FlatMapper defines a function that maps one input value to zero or more
// output values. It represents a transformation that can change the
// cardinality of the flow.
// It answers the question: "How are items in the flow reduced or expanded?"
type FlatMapper[IN, OUT any] func(IN) ([]OUT, error)

func FlatMap[IN, OUT any](flatMapFunc func(IN) ([]OUT, error)) FlatMapper[IN, OUT] {
	return flatMapFunc
}

// Apply transforms a stream using this FlatMapper. Expanded values are
// emitted one by one over an unbuffered channel; the stage never runs
// ahead of its consumer by more than the value currently being handed over.
func (fm FlatMapper[IN, OUT]) Apply(ctx context.Context, s Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) <-chan Result[OUT] {
		out := make(chan Result[OUT])
		go func() {
			defer close(out)
			for resIn := range s.Emit(ctx) {
				resOuts := fm.flatMapResult(resIn)
				for _, resOut := range resOuts {
					select {
					case <-ctx.Done():
						return
					case out <- resOut:
					}
					if resOut.IsError() {
						return
					}
				}
			}
		}()
		return out
	})
}

func (fm FlatMapper[IN, OUT]) flatMapResult(res Result[IN]) (outs []Result[OUT]) {
	defer func() {
		if r := recover(); r != nil {
			outs = []Result[OUT]{Err[OUT](NewPanicError(r))}
		}
	}()

	if res.IsError() {
		return []Result[OUT]{Err[OUT](res.Error())}
	}
	values, err := fm(res.Value())
	if err != nil {
		return []Result[OUT]{Err[OUT](err)}
	}
	results := make([]Result[OUT], len(values))
	for i, v := range values {
		results[i] = Ok(v)
	}
	return results
}

// Predicate reports whether a value should pass a filtering stage.
type Predicate[T any] func(T) bool

// ToFlatMapper adapts the predicate to a FlatMapper that emits either zero
// or one value, so filters can be fused with other element functions.
func (p Predicate[T]) ToFlatMapper() FlatMapper[T, T] {
	return func(v T) ([]T, error) {
		if p(v) {
			return []T{v}, nil
		}
		return nil, nil
	}
}

// ToFlatMapper adapts the mapper to a FlatMapper that emits exactly one value.
func (m Mapper[IN, OUT]) ToFlatMapper() FlatMapper[IN, OUT] {
	return func(v IN) ([]OUT, error) {
		out, err := m(v)
		if err != nil {
			return nil, err
		}
		return []OUT{out}, nil
	}
}

// Fuse composes two mappers into a single stage, avoiding an intermediate
// channel handover between them. The first error wins.
func Fuse[A, B, C any](first Mapper[A, B], second Mapper[B, C]) Mapper[A, C] {
	return func(a A) (C, error) {
		b, err := first(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return second(b)
	}
}

// FuseFlat composes two flat mappers into a single stage. Expansion is
// depth-first: every output of the first function is expanded by the
// second before the next input is touched.
func FuseFlat[A, B, C any](first FlatMapper[A, B], second FlatMapper[B, C]) FlatMapper[A, C] {
	return func(a A) ([]C, error) {
		bs, err := first(a)
		if err != nil {
			return nil, err
		}
		var cs []C
		for _, b := range bs {
			expanded, err := second(b)
			if err != nil {
				return nil, err
			}
			cs = append(cs, expanded...)
		}
		return cs, nil
	}
}
