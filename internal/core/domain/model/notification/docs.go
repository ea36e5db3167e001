// Package notification models the asynchronous notification pipeline: the
// queued Job, the persisted Notification record with its per-channel sent
// flags, the recipient Contact and the per-channel delivery Result.
//
// Channel eligibility is static: SMS carries only order_ready, order_picked_up
// and order_delivered; email carries only payment_success, payment_failed and
// order_delivered.
package notification
