// Package chain presents a sequence of asynchronous operations behind a
// synchronous-looking, chainable call interface. Every named call is
// dispatched to one user-supplied step handler, and each stage begins
// only after the previous stage's completion signal has fired, no matter
// how long that takes.
//
// A chain owns one mutable state map shared by reference across all of
// its steps, and exposes its current tail for external awaiting.
//
// Key operations:
// - New: build a chain from an optional initial pending, a step handler,
//   and an optional return-value handler
// - Call: issue a named call; queues one stage and returns immediately
// - Do: Call variant returning the chain, for fluent sequences
// - Step: bind a step name to a reusable function value
// - Tail/Wait: retrieve or block on "everything issued so far"
//
// The chain is a pure sequencing substrate: it never classifies errors,
// never times out, and never abandons a queued stage. A handler that
// omits its completion signal stalls every subsequent stage forever.
package chain
