// Package kernel provides the domain primitives shared by the dispatch aggregates:
//   - UUID: identifier value object
//   - Center: the fixed set of distribution centers that scope matching
//   - ActiveStatus: in-service flag for drivers and vehicles
//   - GeoPoint: a reported coordinate with range validation
//
// All primitives are immutable values; zero values are invalid where noted.
package kernel
