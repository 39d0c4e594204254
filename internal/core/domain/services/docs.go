// Package services provides domain services that orchestrate business operations
// across several aggregates of the dispatch core.
//
// The package includes:
//   - Dispatcher: checks the assignment preconditions and creates the Delivery
//   - Lifecycle: advances a Delivery and propagates the move to its Order
//
// The rule sentinels declared here are the Conflict rules callers match with errors.Is.
package services
