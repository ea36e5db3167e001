// Package order provides the Order aggregate and the rules of its lifecycle:
// the status state machine, payment status, delivery fee and ETA calculators,
// the append-only status events used for tracking and the pickup locations
// orders are prepared at.
//
// Key business rules:
//   - Orders are created pending with payment pending
//   - Status moves along a fixed edge table: pending -> confirmed -> preparing ->
//     ready -> out-for-delivery -> delivered, with cancelled reachable only from pending
//   - Every target other than pending or cancelled requires the order to be paid
//   - Cancellation is possible only while payment is still pending
//   - A courier is bound at most once, only to a ready door-delivery order
//   - delivered and cancelled are terminal
//
// Business rule violations are returned as errs.PreconditionFailedError or
// errs.ConflictError wrapping one of the Err* rule sentinels of this package,
// so callers can match either the family or the rule with errors.Is.
package order
