package retry

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/sink"
	"github.com/kbukum/flowkit/source"
	"github.com/kbukum/flowkit/stream"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BackoffFactor:  2.0,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), fastConfig(), func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 || calls != 1 {
		t.Errorf("got %d after %d calls", got, calls)
	}
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), fastConfig(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.SinkFailed("remote", stderrors.New("connection reset"))
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "ok" || calls != 3 {
		t.Errorf("got %q after %d calls, want ok after 3", got, calls)
	}
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	boom := errors.SourceFailed(stderrors.New("flaky"))
	calls := 0
	_, err := Do(context.Background(), fastConfig(), func() (int, error) {
		calls++
		return 0, boom
	})
	if !stderrors.Is(err, boom) {
		t.Errorf("expected last error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestDo_NonRetryableFailsFast(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fastConfig(), func() (int, error) {
		calls++
		return 0, errors.InvalidInput("item", "malformed")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("non-retryable error must not be retried, got %d calls", calls)
	}
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Do(ctx, fastConfig(), func() (int, error) {
		return 0, stderrors.New("never retried")
	})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDefaultRetryIf(t *testing.T) {
	if DefaultRetryIf(context.Canceled) {
		t.Error("must not retry cancellation")
	}
	if DefaultRetryIf(errors.InvalidInput("f", "bad")) {
		t.Error("must not retry non-retryable codes")
	}
	if !DefaultRetryIf(errors.Timeout("publish")) {
		t.Error("must retry timeouts")
	}
	if !DefaultRetryIf(stderrors.New("io failure")) {
		t.Error("must retry foreign errors")
	}
}

func TestDo_OnRetryObserved(t *testing.T) {
	cfg := fastConfig()
	var attempts []int
	cfg.OnRetry = func(attempt int, _ error, _ time.Duration) {
		attempts = append(attempts, attempt)
	}
	_, _ = Do(context.Background(), cfg, func() (int, error) {
		return 0, errors.SinkFailed("s", stderrors.New("x"))
	})
	if len(attempts) != 2 {
		t.Errorf("expected callbacks for attempts 1 and 2, got %v", attempts)
	}
}

func TestSink_RetriesTransientFailure(t *testing.T) {
	calls := 0
	flaky := sink.NewFunc("flaky", func(context.Context, int) error {
		calls++
		if calls < 2 {
			return errors.SinkFailed("flaky", stderrors.New("unavailable"))
		}
		return nil
	})
	s := Sink[int](flaky, fastConfig())
	if s.Name() != "flaky" {
		t.Errorf("name = %q, want flaky", s.Name())
	}
	if err := s.Consume(context.Background(), 1); err != nil {
		t.Fatalf("expected success after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 attempts, got %d", calls)
	}
}

func TestProcessor_RetriesWithinProcess(t *testing.T) {
	calls := 0
	flaky := func(_ context.Context, n int) (int, error) {
		calls++
		if calls%2 == 1 {
			return 0, errors.SourceFailed(stderrors.New("hiccup"))
		}
		return n * 2, nil
	}
	results, err := stream.Process(context.Background(),
		source.FromSlice([]int{1, 2}), nil, Processor(flaky, fastConfig()))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || results[0] != 2 || results[1] != 4 {
		t.Errorf("results = %v, want [2 4]", results)
	}
}
