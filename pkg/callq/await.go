package callq

import (
	"context"
)

// Wait blocks until a settles or ctx is done. A ctx error abandons the
// wait only; the pending operation itself keeps running.
func Wait(ctx context.Context, a Awaitable) (Outcome, error) {
	select {
	case <-a.Done():
		return a.Outcome(), nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// OnSettled invokes fn with a's outcome in a new goroutine once a
// settles. The goroutine blocks forever if a never settles.
func OnSettled(a Awaitable, fn func(Outcome)) {
	go func() {
		<-a.Done()
		fn(a.Outcome())
	}()
}
