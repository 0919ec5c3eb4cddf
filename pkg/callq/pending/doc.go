// Package pending provides the single-use completion slot that chains
// serialize on. A Pending is created unsettled and settles exactly once;
// readers observe settlement through the Done channel or Wait.
//
// Highlights:
// - New: an unsettled slot
// - Resolved/Failed: trivially already-settled slots
// - Resolve/Fail: settle the slot; the first call wins, later calls are no-ops
// - Done: closed exactly once on settlement
// - Wait: context-bounded blocking read of the outcome
package pending
