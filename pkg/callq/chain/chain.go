package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ib-77/callq/pkg/callq"
	"github.com/ib-77/callq/pkg/callq/pending"
)

// TailKey is the reserved step name. Its role from the original call
// convention (reading it yields the chain's tail) is covered by Tail;
// issuing a call under it is a usage error.
const TailKey = ""

var ErrReservedKey = errors.New("step key \"\" is reserved for tail retrieval, use Tail()")

// StepHandler implements the behavior of every step of a chain. It is
// invoked once per chained call, after the predecessor stage settles,
// and must invoke ctx.Complete (possibly after arbitrary asynchronous
// work) to let the chain advance.
type StepHandler func(ctx *StepContext)

// ReturnHandler runs synchronously at call time, before the stage
// executes. Returning (v, true) makes the call expression evaluate to v
// instead of the chain.
type ReturnHandler func(ctx *ReturnContext) (any, bool)

// Chain dispatches named calls to one step handler and serializes them:
// stage N+1's handler is not invoked until stage N's completion signal
// has fired, regardless of how the calls were issued.
type Chain struct {
	mu    sync.Mutex
	tail  callq.Awaitable
	step  StepHandler
	ret   ReturnHandler
	state State
}

// New creates a chain that serializes after initial. A nil initial is
// replaced with an already-settled stage, so the first call runs as soon
// as it is issued. step is required but validated lazily: a nil handler
// surfaces when the first call's stage executes, not here. ret may be
// nil.
func New(initial callq.Awaitable, step StepHandler, ret ReturnHandler) *Chain {
	if callq.IsNil(initial) {
		initial = pending.Resolved()
	}
	return &Chain{
		tail:  initial,
		step:  step,
		ret:   ret,
		state: make(State),
	}
}

// Call issues the chained call key(args...). The stage it queues runs
// after every previously queued stage has completed; the call itself
// returns immediately with the chain, or with whatever the return-value
// handler overrides.
//
// Calling with the reserved TailKey panics with ErrReservedKey.
func (c *Chain) Call(key string, args ...any) any {
	if key == TailKey {
		panic(ErrReservedKey)
	}

	c.mu.Lock()
	prev := c.tail
	next := pending.New()
	c.tail = next
	c.mu.Unlock()

	callq.OnSettled(prev, func(prior callq.Outcome) {
		c.runStage(key, args, prev, prior, next)
	})

	if c.ret != nil {
		rc := &ReturnContext{
			CallArguments:     args,
			Key:               key,
			State:             c.state,
			PendingAtCallTime: prev,
			Self:              c,
		}
		if v, ok := c.ret(rc); ok {
			return v
		}
	}
	return c
}

func (c *Chain) runStage(key string, args []any, prev callq.Awaitable,
	prior callq.Outcome, next *pending.Pending) {

	if !prior.IsSuccess() && !prior.IsEmpty() {
		next.Fail(prior.Err())
		return
	}

	defer func() {
		if r := recover(); r != nil {
			next.Fail(fmt.Errorf("step %q panicked: %v", key, r))
		}
	}()

	c.step(&StepContext{
		Complete:          next.Resolve,
		PriorResult:       prior.Values(),
		CallArguments:     args,
		Key:               key,
		State:             c.state,
		PendingAtCallTime: prev,
		Self:              c,
	})
}

// Do issues the chained call and returns the chain, discarding any
// return-value override. It exists for fluent sequences:
// c.Do("a").Do("b", 1).Do("c").
func (c *Chain) Do(key string, args ...any) *Chain {
	c.Call(key, args...)
	return c
}

// Step returns the step function bound to key. Holding and invoking it
// repeatedly appends one stage per invocation, in call order, exactly
// as direct Call invocations would.
func (c *Chain) Step(key string) func(args ...any) any {
	return func(args ...any) any {
		return c.Call(key, args...)
	}
}

// Tail returns the current tail: an awaitable that settles once every
// call issued so far has completed. Reading it repeatedly without
// issuing new calls returns the same pending state each time.
func (c *Chain) Tail() callq.Awaitable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tail
}

// Wait blocks until every call issued so far has completed, or ctx is
// done. A ctx error abandons the wait only; queued stages still run.
func (c *Chain) Wait(ctx context.Context) (callq.Outcome, error) {
	return callq.Wait(ctx, c.Tail())
}

// State returns the chain's shared state map. Its identity is fixed for
// the chain's lifetime.
func (c *Chain) State() State {
	return c.state
}
