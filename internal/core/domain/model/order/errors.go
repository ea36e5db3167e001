package order

import "errors"

// Rule sentinels. They are always returned wrapped in errs.PreconditionFailedError
// or errs.ConflictError.
var (
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
	ErrOrderNotPaid             = errors.New("order is not paid")
	ErrOrderAlreadyAssigned     = errors.New("order is already assigned to a courier")
	ErrOrderNotReady            = errors.New("order is not ready")
	ErrInvalidOrderType         = errors.New("operation is not valid for the order delivery type")
	ErrInvalidOrderStatus       = errors.New("order status does not allow this operation")
	ErrCancellationNotAllowed   = errors.New("order can be cancelled only while payment is pending")
	ErrOrderAlreadyCancelled    = errors.New("order is already cancelled")
	ErrCourierNotAssigned       = errors.New("order has no assigned courier")
	ErrNotAssignedCourier       = errors.New("courier is not assigned to this order")
)
