// Package delivery provides the Delivery aggregate: the binding of one order to
// one driver and one vehicle, with its own lifecycle.
//
// The package includes:
//   - Delivery: aggregate root with status, timeline, position, proof and verification
//   - Status: the delivery state machine; OnTheWay is parsed as InTransit
//   - TimelineEvent: append-only audit entries
//   - Position and Proof value objects
//
// Key business rules:
//   - Every accepted status move appends exactly one timeline event
//   - Delivered and Failed are terminal
//   - Positions are applied only when they are not older than the stored one
//   - Verification is independent of status; attaching proof changes neither
package delivery
