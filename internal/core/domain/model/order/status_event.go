package order

import (
	"errors"
	"sort"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
)

// StatusEvent is an immutable audit entry written on every lifecycle transition.
// The newest event of an order is its current position for tracking.
type StatusEvent struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	message   string
	actorID   *kernel.UUID
	point     *kernel.GeoPoint
	createdAt time.Time
}

// NewStatusEvent builds an event. actorID and point are optional.
func NewStatusEvent(
	orderID kernel.UUID,
	status Status,
	message string,
	actorID *kernel.UUID,
	point *kernel.GeoPoint,
	createdAt time.Time,
) (StatusEvent, error) {
	return RestoreStatusEvent(kernel.NewUUID(), orderID, status, message, actorID, point, createdAt)
}

// RestoreStatusEvent rebuilds a persisted event.
func RestoreStatusEvent(
	id, orderID kernel.UUID,
	status Status,
	message string,
	actorID *kernel.UUID,
	point *kernel.GeoPoint,
	createdAt time.Time,
) (StatusEvent, error) {
	errList := []error{id.Validate(), orderID.Validate(), status.Validate()}
	if actorID != nil {
		errList = append(errList, actorID.Validate())
	}
	if point != nil {
		errList = append(errList, point.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return StatusEvent{}, err
	}

	return StatusEvent{
		id:        id,
		orderID:   orderID,
		status:    status,
		message:   message,
		actorID:   actorID,
		point:     point,
		createdAt: createdAt,
	}, nil
}

func (e StatusEvent) ID() kernel.UUID         { return e.id }
func (e StatusEvent) OrderID() kernel.UUID    { return e.orderID }
func (e StatusEvent) Status() Status          { return e.status }
func (e StatusEvent) Message() string         { return e.message }
func (e StatusEvent) ActorID() *kernel.UUID   { return e.actorID }
func (e StatusEvent) Point() *kernel.GeoPoint { return e.point }
func (e StatusEvent) CreatedAt() time.Time    { return e.createdAt }

// SortEvents orders events by creation time, oldest first. Ties keep their input order.
func SortEvents(events []StatusEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].createdAt.Before(events[j].createdAt)
	})
}
