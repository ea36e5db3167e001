package commands

import (
	"errors"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"
	"freshdispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order for a customer.
//
// Example:
//
//	rice, _ := order.NewItem("Jollof rice", 2, 250000, 20)
//	cmd, err := NewCreateOrderCommand(customerID, order.DoorDelivery, kitchenID,
//	    &lat, &lon, "12 Allen Avenue", []order.Item{rice}, 0, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID       kernel.UUID
	deliveryType     order.DeliveryType
	pickupLocationID kernel.UUID
	deliveryPoint    *kernel.GeoPoint
	deliveryAddress  string
	items            []order.Item
	extras           kernel.Money
	discount         kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Rules that need the
// pickup location (distance, fee) are applied by the handler.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	deliveryType order.DeliveryType,
	pickupLocationID kernel.UUID,
	deliveryLat, deliveryLon *float64,
	deliveryAddress string,
	items []order.Item,
	extras, discount kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		extras:          extras,
		discount:        discount,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDeliveryType(deliveryType),
		cmd.setPickupLocationID(pickupLocationID),
		cmd.setDeliveryPoint(deliveryLat, deliveryLon),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID          { return c.customerID }
func (c CreateOrderCommand) DeliveryType() order.DeliveryType { return c.deliveryType }
func (c CreateOrderCommand) PickupLocationID() kernel.UUID    { return c.pickupLocationID }
func (c CreateOrderCommand) DeliveryPoint() *kernel.GeoPoint  { return c.deliveryPoint }
func (c CreateOrderCommand) DeliveryAddress() string          { return c.deliveryAddress }
func (c CreateOrderCommand) Items() []order.Item              { return c.items }
func (c CreateOrderCommand) Extras() kernel.Money             { return c.extras }
func (c CreateOrderCommand) Discount() kernel.Money           { return c.discount }

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(t order.DeliveryType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.deliveryType = t
	return nil
}

func (c *CreateOrderCommand) setPickupLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickupLocationId", err)
	}
	c.pickupLocationID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryPoint(lat, lon *float64) error {
	p, err := optionalPoint(lat, lon)
	if err != nil {
		return err
	}
	c.deliveryPoint = p
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}
