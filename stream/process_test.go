package stream

import (
	"context"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/sink"
	"github.com/kbukum/flowkit/source"
)

func double(_ context.Context, n int) (int, error)    { return n * 2, nil }
func increment(_ context.Context, n int) (int, error) { return n + 1, nil }

func TestProcess_OrderAndAccumulation(t *testing.T) {
	snk := sink.NewSlice[int]()
	results, err := Process(context.Background(), source.FromSlice([]int{1, 2, 3}), snk, double)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(results, []int{2, 4, 6}) {
		t.Errorf("results = %v, want [2 4 6]", results)
	}
	if got := snk.Items(); !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Errorf("sink received %v, want [2 4 6]", got)
	}
}

func TestProcess_NilSink(t *testing.T) {
	results, err := Process[int](context.Background(), source.FromSlice([]int{1, 2}), nil, double, increment)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(results, []int{3, 5}) {
		t.Errorf("results = %v, want [3 5]", results)
	}
}

func TestProcess_NoProcessors(t *testing.T) {
	results, err := Process[int](context.Background(), source.FromSlice([]int{7, 8}), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(results, []int{7, 8}) {
		t.Errorf("results = %v, want [7 8]", results)
	}
}

func TestProcess_ProcessorErrorAborts(t *testing.T) {
	boom := stderrors.New("bad item")
	failOnTwo := func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	}
	produced := 0
	src := source.FromSlice([]int{1, 2, 3})
	counted := source.Tap(src, func(context.Context, int) error {
		produced++
		return nil
	})

	snk := sink.NewSlice[int]()
	results, err := Process(context.Background(), counted, snk, failOnTwo)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.CodeOf(err) != errors.ErrCodeProcessorFailed {
		t.Errorf("code = %v, want PROCESSOR_FAILED", errors.CodeOf(err))
	}
	if !stderrors.Is(err, boom) {
		t.Error("expected cause to be preserved")
	}
	if !reflect.DeepEqual(results, []int{1}) {
		t.Errorf("partial results = %v, want [1]", results)
	}
	if got := snk.Items(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("sink received %v, want [1]", got)
	}
	if produced != 2 {
		t.Errorf("produced %d items, want 2 (item after the failure must not be pulled)", produced)
	}
}

func TestProcess_ProcessorErrorCarriesIndex(t *testing.T) {
	boom := stderrors.New("boom")
	failing := func(_ context.Context, n int) (int, error) { return 0, boom }
	_, err := Process(context.Background(), source.FromSlice([]int{1}), nil, double, failing)
	appErr, ok := errors.As(err)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if appErr.Details["processor"] != 1 {
		t.Errorf("processor detail = %v, want 1", appErr.Details["processor"])
	}
}

func TestProcess_SinkErrorAborts(t *testing.T) {
	refused := stderrors.New("refused")
	snk := sink.NewFunc("flaky", func(_ context.Context, n int) error {
		if n == 4 {
			return refused
		}
		return nil
	})
	results, err := Process(context.Background(), source.FromSlice([]int{1, 2, 3}), snk, double)
	if errors.CodeOf(err) != errors.ErrCodeSinkFailed {
		t.Fatalf("code = %v, want SINK_FAILED", errors.CodeOf(err))
	}
	if !stderrors.Is(err, refused) {
		t.Error("expected cause to be preserved")
	}
	if !reflect.DeepEqual(results, []int{2, 4}) {
		t.Errorf("results = %v, want [2 4]", results)
	}
}

type failingIter struct {
	n   int
	err error
}

func (it *failingIter) Next(context.Context) (int, bool, error) {
	it.n++
	if it.n > 2 {
		return 0, false, it.err
	}
	return it.n, true, nil
}

func (it *failingIter) Close() error { return nil }

func TestProcess_SourceErrorAborts(t *testing.T) {
	broken := stderrors.New("read failure")
	src := source.FromFunc(func(context.Context) source.Iterator[int] {
		return &failingIter{err: broken}
	})
	results, err := Process[int](context.Background(), src, nil)
	if errors.CodeOf(err) != errors.ErrCodeSourceFailed {
		t.Fatalf("code = %v, want SOURCE_FAILED", errors.CodeOf(err))
	}
	if !reflect.DeepEqual(results, []int{1, 2}) {
		t.Errorf("results = %v, want [1 2]", results)
	}
}

func TestProcess_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Process[int](ctx, source.FromSlice([]int{1, 2, 3}), nil, double)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestProcess_EmptySource(t *testing.T) {
	results, err := Process[int](context.Background(), source.FromSlice[int](nil), sink.NewDiscard[int](), double)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v, want empty", results)
	}
}
