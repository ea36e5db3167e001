package order

import (
	"fmt"

	"freshdispatch/internal/pkg/errs"
)

// DeliveryType tells whether the customer collects the order or a courier brings it.
type DeliveryType int

const (
	DeliveryTypeUnknown DeliveryType = iota
	Pickup
	DoorDelivery
)

var deliveryTypeNames = map[DeliveryType]string{
	Pickup:       "pickup",
	DoorDelivery: "door-delivery",
}

func ParseDeliveryType(s string) (DeliveryType, error) {
	for t, name := range deliveryTypeNames {
		if name == s {
			return t, nil
		}
	}
	return DeliveryTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryType", fmt.Errorf("%q is not a valid delivery type", s))
}

func (t DeliveryType) String() string {
	if name, ok := deliveryTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t DeliveryType) Validate() error {
	if _, ok := deliveryTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryType", fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}
