package callq

import (
    "context"
    "errors"
    "testing"
    "time"
)

// settledSlot is a minimal Awaitable for tests in this package; the real
// implementation lives in the pending subpackage.
type settledSlot struct {
    done chan struct{}
    out  Outcome
}

func newSlot() *settledSlot {
    return &settledSlot{done: make(chan struct{})}
}

func (s *settledSlot) settle(out Outcome) {
    s.out = out
    close(s.done)
}

func (s *settledSlot) Done() <-chan struct{} {
    return s.done
}

func (s *settledSlot) Outcome() Outcome {
    return s.out
}

func TestWait_SettledAwaitable(t *testing.T) {
    t.Parallel()
    s := newSlot()
    s.settle(Settle(7))

    out, err := Wait(context.Background(), s)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if !out.IsSuccess() || out.First() != 7 {
        t.Fatalf("expected success with 7, got: success=%v, first=%v", out.IsSuccess(), out.First())
    }
}

func TestWait_ContextExpiry(t *testing.T) {
    t.Parallel()
    s := newSlot()

    ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
    defer cancel()

    _, err := Wait(ctx, s)
    if !errors.Is(err, context.DeadlineExceeded) {
        t.Fatalf("expected deadline exceeded, got: %v", err)
    }
}

func TestOnSettled_RunsAfterSettlement(t *testing.T) {
    t.Parallel()
    s := newSlot()
    got := make(chan Outcome, 1)

    OnSettled(s, func(out Outcome) {
        got <- out
    })

    select {
    case <-got:
        t.Fatalf("callback must not run before settlement")
    case <-time.After(20 * time.Millisecond):
    }

    s.settle(Settle("late"))

    select {
    case out := <-got:
        if !out.IsSuccess() || out.First() != "late" {
            t.Fatalf("expected success with 'late', got: success=%v, first=%v", out.IsSuccess(), out.First())
        }
    case <-time.After(time.Second):
        t.Fatalf("callback not invoked after settlement")
    }
}

func TestIsNil(t *testing.T) {
    t.Parallel()
    if !IsNil(nil) {
        t.Fatalf("nil interface must be nil")
    }
    var s *settledSlot
    if !IsNil(s) {
        t.Fatalf("typed nil pointer must be nil")
    }
    if IsNil(newSlot()) {
        t.Fatalf("non-nil pointer must not be nil")
    }
}
