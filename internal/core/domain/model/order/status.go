package order

import (
	"fmt"

	"freshdispatch/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> out-for-delivery ──> delivered
//	   │                                      │                               ▲
//	   └──> cancelled                         └──────── (pickup orders) ──────┘
//
// Every non-terminal status may also transition to itself; such a transition
// leaves the status unchanged but still produces a status event.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	OutForDelivery
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:        "pending",
	Confirmed:      "confirmed",
	Preparing:      "preparing",
	Ready:          "ready",
	OutForDelivery: "out-for-delivery",
	Delivered:      "delivered",
	Cancelled:      "cancelled",
}

// allowedTransitions is the complete edge table. Whatever is not listed is rejected.
var allowedTransitions = map[Status][]Status{
	Pending:        {Pending, Confirmed, Cancelled},
	Confirmed:      {Confirmed, Preparing},
	Preparing:      {Preparing, Ready},
	Ready:          {Ready, OutForDelivery, Delivered},
	OutForDelivery: {OutForDelivery, Delivered},
	Delivered:      nil,
	Cancelled:      nil,
}

// ParseStatus maps the persisted or wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, OutForDelivery, Delivered, Cancelled}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects Unknown and any value outside the enum.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActiveForCourier reports whether an assigned order in this status counts
// against the courier's concurrent order cap.
func (s Status) IsActiveForCourier() bool {
	return s == Ready || s == OutForDelivery
}

// RequiresPayment reports whether moving into s requires a paid order.
func (s Status) RequiresPayment() bool {
	return s != Pending && s != Cancelled
}

// CanTransitionTo checks the edge s -> target against the table.
//
// Returns:
//   - nil if the edge exists
//   - errs.PreconditionFailedError wrapping ErrInvalidStatusTransition, naming the edge, otherwise
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return nil
		}
	}
	return errs.NewPreconditionFailedErrorWithDetail(ErrInvalidStatusTransition, fmt.Sprintf("%s -> %s", s, target))
}
