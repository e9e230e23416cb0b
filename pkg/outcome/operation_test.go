package outcome

import (
	"context"
	"errors"
	"testing"
)

func TestSettle_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	o := Settle(ctx, func(ctx context.Context) (string, error) {
		return "done", nil
	})

	if !o.IsSuccess() || o.Value() != "done" {
		t.Fatalf("expected success with 'done', got: success=%v, val=%q, reason=%v", o.IsSuccess(), o.Value(), o.Reason())
	}
}

func TestSettle_Failure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	o := Settle(ctx, func(ctx context.Context) (string, error) {
		return "", err
	})

	if o.IsSuccess() || o.Reason() != err {
		t.Fatalf("expected failure 'boom', got: success=%v, reason=%v", o.IsSuccess(), o.Reason())
	}
}

func TestGo_AwaitSettlesOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Go(ctx, func(ctx context.Context) (int, error) {
		return 7, nil
	})

	o := f.Await()
	if !o.IsSuccess() || o.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v", o.IsSuccess(), o.Value())
	}

	// The channel is closed after the single settlement; a second await
	// yields the empty outcome.
	if again := f.Await(); !again.IsEmpty() {
		t.Fatalf("expected empty outcome on drained future, got: success=%v, reason=%v", again.IsSuccess(), again.Reason())
	}
}

func TestFuture_AsOperation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("late failure")

	f := Go(ctx, func(ctx context.Context) (int, error) {
		return 0, err
	})

	v, got := f.AsOperation()(ctx)
	if got != err || v != 0 {
		t.Fatalf("expected (0, late failure), got: (%v, %v)", v, got)
	}
}
