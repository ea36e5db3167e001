// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - DispatchMatcher: dual-radius proximity filtering of couriers for a ready
//     order, and of ready orders for a courier
//
// Proximity is always great-circle distance, the same metric order pricing uses.
package services
