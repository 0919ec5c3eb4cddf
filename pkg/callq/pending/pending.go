package pending

import (
	"context"
	"sync"

	"github.com/ib-77/callq/pkg/callq"
)

// Pending is a single-use asynchronous completion slot. It starts
// unsettled and settles exactly once, either resolved with a value list
// or failed with an error. Settlement is published by closing the Done
// channel; only the first Resolve or Fail call has effect.
type Pending struct {
	mu      sync.Mutex
	done    chan struct{}
	settled bool
	outcome callq.Outcome
}

func New() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolved returns an already-settled slot carrying the given values.
func Resolved(values ...any) *Pending {
	p := New()
	p.Resolve(values...)
	return p
}

// Failed returns an already-rejected slot.
func Failed(err error) *Pending {
	p := New()
	p.Fail(err)
	return p
}

// Resolve settles p successfully. Later calls to Resolve or Fail are
// no-ops.
func (p *Pending) Resolve(values ...any) {
	p.settle(callq.Settle(values...))
}

// Fail settles p with err. Later calls to Resolve or Fail are no-ops.
func (p *Pending) Fail(err error) {
	p.settle(callq.Reject(err))
}

func (p *Pending) settle(o callq.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.settled {
		return
	}
	p.settled = true
	p.outcome = o
	close(p.done)
}

// Done returns a channel that is closed exactly once, on settlement.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

func (p *Pending) Settled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settled
}

// Outcome returns the settled outcome, or the zero Outcome before
// settlement.
func (p *Pending) Outcome() callq.Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome
}

// Wait blocks until p settles or ctx is done.
func (p *Pending) Wait(ctx context.Context) (callq.Outcome, error) {
	return callq.Wait(ctx, p)
}
