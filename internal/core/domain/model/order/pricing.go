package order

import (
	"math"

	"freshdispatch/internal/core/domain/model/kernel"
)

// Delivery fee and ETA constants. Money is in kobo.
const (
	Per3KmFee           kernel.Money = 40000
	MinFee              kernel.Money = 50000
	ExtraItemsThreshold              = 5
	ExtraItemsFee       kernel.Money = 60000

	MinutesPerKm = 3
)

// CalculateDeliveryFee prices a door delivery over distanceKm.
//
//	fee = max(MinFee, ceil(distanceKm/3) * Per3KmFee) + (itemCount > 5 ? ExtraItemsFee : 0)
//
// A non-positive distance means the customer collects the order, which is free
// regardless of item count.
func CalculateDeliveryFee(distanceKm float64, itemCount int) kernel.Money {
	if distanceKm <= 0 || math.IsNaN(distanceKm) {
		return 0
	}

	blocks := kernel.Money(math.Ceil(distanceKm / 3))
	fee := (blocks * Per3KmFee).Max(MinFee)

	if itemCount > ExtraItemsThreshold {
		fee += ExtraItemsFee
	}
	return fee
}

// CalculateETA returns the estimated minutes from now until the order reaches
// the customer: the longest item preparation plus, for door delivery, the
// travel time at MinutesPerKm.
func CalculateETA(items []Item, distanceKm float64, deliveryType DeliveryType) int {
	prep := 0
	for _, item := range items {
		if item.PrepMinutes() > prep {
			prep = item.PrepMinutes()
		}
	}

	if deliveryType != DoorDelivery || distanceKm <= 0 {
		return prep
	}
	return prep + int(math.Round(distanceKm*MinutesPerKm))
}

// Breakdown is the money summary of an order.
type Breakdown struct {
	Subtotal    kernel.Money
	Extras      kernel.Money
	DeliveryFee kernel.Money
	Discount    kernel.Money
	Total       kernel.Money
}

// NewBreakdown totals the parts; a discount larger than the rest floors the total at zero.
func NewBreakdown(subtotal, extras, deliveryFee, discount kernel.Money) Breakdown {
	total := subtotal + extras + deliveryFee - discount
	return Breakdown{
		Subtotal:    subtotal,
		Extras:      extras,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		Total:       total.Max(0),
	}
}
