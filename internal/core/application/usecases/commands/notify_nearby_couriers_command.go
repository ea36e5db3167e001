package commands

import (
	"errors"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/guard"
)

var ErrNotifyNearbyCouriersCommandIsNotConstructed = errors.New(
	"NotifyNearbyCouriersCommand must be created via NewNotifyNearbyCouriersCommand constructor",
)

// NotifyNearbyCouriersCommand broadcasts a ready order to couriers within reach.
type NotifyNearbyCouriersCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewNotifyNearbyCouriersCommand(orderID kernel.UUID) (NotifyNearbyCouriersCommand, error) {
	if err := orderID.Validate(); err != nil {
		return NotifyNearbyCouriersCommand{}, err
	}
	return NotifyNearbyCouriersCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c NotifyNearbyCouriersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyNearbyCouriersCommandIsNotConstructed)
}

func (c NotifyNearbyCouriersCommand) OrderID() kernel.UUID { return c.orderID }
