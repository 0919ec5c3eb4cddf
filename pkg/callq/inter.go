package callq

import "time"

type OutcomeProvider interface {
	// Values returns the completion values in argument-list form
	Values() []any
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can carry values or an error
type WithError interface {
	OutcomeProvider
	// Err returns the error if the stage was rejected
	Err() error
	// IsSuccess returns true if the stage settled successfully
	IsSuccess() bool
}

// Awaitable is the read side of a pending operation: a channel that
// closes on settlement and the outcome once settled.
type Awaitable interface {
	// Done returns a channel that is closed exactly once, on settlement
	Done() <-chan struct{}
	// Outcome returns the settled outcome; zero value before settlement
	Outcome() Outcome
}
