package chain

import (
	"github.com/ib-77/callq/pkg/callq"
)

// State is the mutable mapping shared by every step of one chain. It is
// created empty at construction and its identity never changes; handlers
// mutate it in place. The serialization guarantee means step handlers
// never run concurrently for the same chain, so no locking is needed as
// long as the map stays inside one chain.
type State map[string]any

// StepContext is built fresh for each chained call and passed once to
// the step handler, after the predecessor stage has settled.
type StepContext struct {
	// Complete settles this call's stage, optionally carrying values that
	// become the next stage's PriorResult. It must be invoked exactly
	// once; omitting it stalls the chain forever, and only the first
	// invocation has effect.
	Complete func(values ...any)

	// PriorResult holds the values the predecessor stage's completion
	// signal carried, in argument-list form. Empty for the first call on
	// a default-constructed chain.
	PriorResult []any

	// CallArguments holds the arguments passed to this chained call.
	CallArguments []any

	// Key is the step name this call was issued under.
	Key string

	// State is the chain's shared state.
	State State

	// PendingAtCallTime is the chain's tail as it stood when this call
	// was issued, i.e. this stage's predecessor.
	PendingAtCallTime callq.Awaitable

	// Self is the chain the call was issued on; lets a handler issue
	// further chained calls.
	Self *Chain
}

// ReturnContext is passed to the return-value handler synchronously at
// call time. It mirrors StepContext without Complete and without
// PriorResult: the predecessor stage may not have settled yet, so
// neither exists when the handler runs.
type ReturnContext struct {
	CallArguments     []any
	Key               string
	State             State
	PendingAtCallTime callq.Awaitable
	Self              *Chain
}
