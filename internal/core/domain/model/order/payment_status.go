package order

import (
	"fmt"

	"freshdispatch/internal/pkg/errs"
)

// PaymentStatus tracks the payment gateway outcome for an order.
//
//	pending ──> paid
//	   │         ▲
//	   └──> failed
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentPending: "pending",
	PaymentPaid:    "paid",
	PaymentFailed:  "failed",
}

var allowedPaymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentFailed:  {PaymentPaid},
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusNames {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (p PaymentStatus) String() string {
	if name, ok := paymentStatusNames[p]; ok {
		return name
	}
	return "unknown"
}

func (p PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// CanTransitionTo checks the payment edge p -> target.
func (p PaymentStatus) CanTransitionTo(target PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	for _, allowed := range allowedPaymentTransitions[p] {
		if allowed == target {
			return nil
		}
	}
	return errs.NewPreconditionFailedErrorWithDetail(ErrInvalidPaymentTransition, fmt.Sprintf("%s -> %s", p, target))
}
