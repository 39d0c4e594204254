// Package order provides the Order aggregate and its pipeline state machine.
//
// The package includes:
//   - Order: aggregate root holding code, customer, items, priority, center and status
//   - Status: the pipeline state machine
//   - Priority and Item value objects
//
// Key business rules:
//   - The delivery center is set at creation and never changes
//   - The total is derived from the items and is never supplied
//   - Status follows Pending -> ReadyForDispatch -> Assigned -> InTransit -> Delivered,
//     with Failed and Cancelled as side exits
//   - Delivered, Failed and Cancelled are terminal; any transition out of them
//     fails with kernel.ErrInvalidTransition
package order
