package commands

import (
	"errors"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand is a courier accepting a ready order. ActorID is who
// performed the acceptance, usually the courier itself.
//
// Example:
//
//	cmd, _ := NewAssignCourierCommand(orderID, courierID, courierID)
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderAlreadyAssigned) {
//	    // another courier was faster
//	}
type AssignCourierCommand struct {
	orderID   kernel.UUID
	courierID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(orderID, courierID, actorID kernel.UUID) (AssignCourierCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate(), actorID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		actorID:   actorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AssignCourierCommand) CourierID() kernel.UUID { return c.courierID }
func (c AssignCourierCommand) ActorID() kernel.UUID   { return c.actorID }
