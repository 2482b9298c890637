package source

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/kbukum/flowkit/predicate"
)

func TestMap(t *testing.T) {
	src := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestMap_TypeConversion(t *testing.T) {
	src := Map(FromSlice([]int{1, 2}), func(_ context.Context, n int) (string, error) {
		return strconv.Itoa(n), nil
	})
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestMap_Error(t *testing.T) {
	boom := errors.New("bad value")
	src := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	got, err := Collect(context.Background(), src)
	if !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
	if !intSliceEqual(got, []int{1}) {
		t.Errorf("expected [1] before error, got %v", got)
	}
}

func TestFilter(t *testing.T) {
	src := Filter(FromSlice([]int{1, 2, 3, 4}), predicate.GreaterThan(2))
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{3, 4}) {
		t.Errorf("got %v, want [3 4]", got)
	}
}

func TestFlatMap(t *testing.T) {
	src := FlatMap(FromSlice([]int{1, 2}), func(_ context.Context, n int) ([]int, error) {
		return []int{n, n * 10}, nil
	})
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 10, 2, 20}) {
		t.Errorf("got %v, want [1 10 2 20]", got)
	}
}

func TestFlatMap_EmptyExpansion(t *testing.T) {
	src := FlatMap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) ([]int, error) {
		if n == 2 {
			return nil, nil
		}
		return []int{n}, nil
	})
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 3}) {
		t.Errorf("got %v, want [1 3]", got)
	}
}

func TestTap(t *testing.T) {
	var seen []int
	src := Tap(FromSlice([]int{1, 2}), func(_ context.Context, n int) error {
		seen = append(seen, n)
		return nil
	})
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("tap must pass items through unchanged, got %v", got)
	}
	if !intSliceEqual(seen, []int{1, 2}) {
		t.Errorf("tap side-effect saw %v", seen)
	}
}

func TestTap_Error(t *testing.T) {
	boom := errors.New("tap failed")
	src := Tap(FromSlice([]int{1}), func(_ context.Context, _ int) error {
		return boom
	})
	_, err := Collect(context.Background(), src)
	if !errors.Is(err, boom) {
		t.Errorf("expected tap error to propagate, got %v", err)
	}
}

func TestConcat(t *testing.T) {
	src := Concat(FromSlice([]int{1, 2}), FromSlice([]int{3}))
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestReduce(t *testing.T) {
	src := Reduce(FromSlice([]int{1, 2, 3}), 0, func(acc, n int) int { return acc + n })
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 6 {
		t.Errorf("got %v, want [6]", got)
	}
}

func TestBatch_BySize(t *testing.T) {
	src := Batch(FromSlice([]int{1, 2, 3, 4, 5}), 2, 0)
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(got))
	}
	if !intSliceEqual(got[0], []int{1, 2}) || !intSliceEqual(got[1], []int{3, 4}) || !intSliceEqual(got[2], []int{5}) {
		t.Errorf("unexpected batches %v", got)
	}
}

func TestBuffer(t *testing.T) {
	src := Buffer(FromSlice([]int{1, 2, 3}), 2)
	got, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestBuffer_PropagatesError(t *testing.T) {
	boom := errors.New("upstream broke")
	upstream := Map(FromSlice([]int{1, 2}), func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	got, err := Collect(context.Background(), Buffer(upstream, 1))
	if !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !intSliceEqual(got, []int{1}) {
		t.Errorf("expected [1] before error, got %v", got)
	}
	// Give the producer goroutine a moment to exit after close.
	time.Sleep(10 * time.Millisecond)
}

func TestChain_MapFilterTake(t *testing.T) {
	n := 0
	naturals := Generate(func() (int, bool) {
		n++
		return n, true
	})
	evens := Filter(Map(naturals, func(_ context.Context, v int) (int, error) {
		return v * 3, nil
	}), func(v int) bool { return v%2 == 0 })

	got, err := Collect(context.Background(), Take(evens, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{6, 12, 18}) {
		t.Errorf("got %v, want [6 12 18]", got)
	}
}
