// Package courier provides the courier profile used for dispatch and
// assignment, and the courier's last known location.
//
// The package includes:
//   - Courier: identity, name, operating status and the region the courier works in
//   - Location: the courier's latest reported geo point
//
// Key business rules:
//   - Only active couriers are notified about ready orders or may accept them
//   - A courier holds at most MaxActiveOrders ready or out-for-delivery orders
//   - A location is written only by the courier it belongs to
package courier
