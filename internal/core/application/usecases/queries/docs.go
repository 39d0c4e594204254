// Package queries contains the read operations of the dispatch service.
//
// Queries never go through a unit of work. Each handler validates its query and
// delegates to a reader port implemented by the storage adapter, which answers
// from the current state of the store. Results are read models (views) shaped
// for the API rather than domain aggregates.
package queries
