package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avollmer/coldflow/flow"
	"github.com/avollmer/coldflow/flow/aggregate"
)

func TestFoldStage(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		initial int
		folder  func(acc, item int) int
		want    []int
	}{
		{
			name:    "product with seed",
			input:   []int{1, 2, 3, 4, 5},
			initial: 2,
			folder:  func(acc, item int) int { return acc * item },
			want:    []int{240},
		},
		{
			name:    "sum",
			input:   []int{1, 2, 3},
			initial: 0,
			folder:  func(acc, item int) int { return acc + item },
			want:    []int{6},
		},
		{
			name:    "empty stream emits the initial value",
			input:   []int{},
			initial: 17,
			folder:  func(acc, item int) int { return acc + item },
			want:    []int{17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			stream := flow.FromSlice(tt.input)
			folded := aggregate.Fold(tt.initial, tt.folder).Apply(ctx, stream)
			got, err := flow.Slice[int](ctx, folded)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFoldStage_DifferentTypes(t *testing.T) {
	ctx := context.Background()
	stream := flow.FromSlice([]int{1, 2, 3})

	joined := aggregate.Fold("", func(acc string, item int) string {
		if acc == "" {
			return string(rune('0' + item))
		}
		return acc + "," + string(rune('0'+item))
	}).Apply(ctx, stream)

	got, err := flow.Slice[string](ctx, joined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "1,2,3" {
		t.Errorf("got %v, want [1,2,3]", got)
	}
}

func TestFoldStage_ErrorSuppressesResult(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("source failed")

	stream := flow.Create(func(ctx context.Context, emit func(int) error) error {
		if err := emit(1); err != nil {
			return err
		}
		return failure
	})

	folded := aggregate.Fold(0, func(acc, item int) int { return acc + item }).Apply(ctx, stream)
	results := flow.Collect(ctx, folded)

	// No partial sum; just the terminating error.
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !results[0].IsError() || !errors.Is(results[0].Error(), failure) {
		t.Errorf("expected terminating error %v, got %v", failure, results[0])
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		initial int
		scanner func(acc, item int) int
		want    []int
	}{
		{
			name:    "running sum",
			input:   []int{1, 2, 3, 4},
			initial: 0,
			scanner: func(acc, item int) int { return acc + item },
			want:    []int{1, 3, 6, 10},
		},
		{
			name:    "running max",
			input:   []int{3, 1, 4, 1, 5},
			initial: 0,
			scanner: func(acc, item int) int { return max(acc, item) },
			want:    []int{3, 3, 4, 4, 5},
		},
		{
			name:    "empty stream emits nothing",
			input:   []int{},
			initial: 9,
			scanner: func(acc, item int) int { return acc + item },
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			stream := flow.FromSlice(tt.input)
			scanned := aggregate.Scan(tt.initial, tt.scanner).Apply(ctx, stream)
			got, err := flow.Slice[int](ctx, scanned)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScan_ErrorAfterPartials(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("source failed")

	stream := flow.Create(func(ctx context.Context, emit func(int) error) error {
		for _, v := range []int{1, 2} {
			if err := emit(v); err != nil {
				return err
			}
		}
		return failure
	})

	scanned := aggregate.Scan(0, func(acc, item int) int { return acc + item }).Apply(ctx, stream)
	results := flow.Collect(ctx, scanned)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].IsValue() || results[0].Value() != 1 {
		t.Errorf("expected partial 1, got %v", results[0])
	}
	if !results[1].IsValue() || results[1].Value() != 3 {
		t.Errorf("expected partial 3, got %v", results[1])
	}
	if !results[2].IsError() || !errors.Is(results[2].Error(), failure) {
		t.Errorf("expected terminating error %v, got %v", failure, results[2])
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  int
	}{
		{
			name:  "several values",
			input: []string{"a", "b", "c"},
			want:  3,
		},
		{
			name:  "empty stream",
			input: []string{},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			stream := flow.FromSlice(tt.input)
			counted := aggregate.Count[string]().Apply(ctx, stream)
			got, err := flow.Slice[int](ctx, counted)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("got %v, want [%d]", got, tt.want)
			}
		})
	}
}
