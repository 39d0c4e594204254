// Package driver provides the Driver aggregate of the resource directory.
//
// A driver is eligible for assignment only when it is Approved and Active.
// Whether an eligible driver is also available depends on the deliveries that
// reference it and is answered by the availability queries, not by this package.
package driver
