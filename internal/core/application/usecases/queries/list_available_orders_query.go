package queries

import (
	"errors"
	"fmt"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"
	"freshdispatch/internal/pkg/guard"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 50
	MaxPage          = 1000
)

var ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
	"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
)

// ListAvailableOrdersQuery asks for one page of the orders a courier may accept.
//
// Example:
//
//	query, err := NewListAvailableOrdersQuery(courierID, 1, 20)
//	page, err := handler.Handle(ctx, query)
type ListAvailableOrdersQuery struct {
	courierID kernel.UUID
	page      int
	limit     int

	guard guard.ConstructorGuard
}

// NewListAvailableOrdersQuery validates paging. A zero page or limit takes
// the default (page 1, DefaultPageLimit). Pages past MaxPage are refused.
func NewListAvailableOrdersQuery(courierID kernel.UUID, page, limit int) (ListAvailableOrdersQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}

	var pageErr, limitErr error
	if page < 1 {
		pageErr = errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("must be positive, got %d", page))
	} else if page > MaxPage {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, MaxPage)
	}
	if limit < 1 || limit > MaxPageLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	if err := errors.Join(courierID.Validate(), pageErr, limitErr); err != nil {
		return ListAvailableOrdersQuery{}, err
	}

	return ListAvailableOrdersQuery{
		courierID: courierID,
		page:      page,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

func (q ListAvailableOrdersQuery) CourierID() kernel.UUID { return q.courierID }
func (q ListAvailableOrdersQuery) Page() int              { return q.page }
func (q ListAvailableOrdersQuery) Limit() int             { return q.limit }

// AvailableOrder is one order a courier may accept.
type AvailableOrder struct {
	OrderID            kernel.UUID
	Number             string
	PickupName         string
	PickupLat          float64
	PickupLon          float64
	DeliveryAddress    string
	DeliveryLat        float64
	DeliveryLon        float64
	DeliveryFee        kernel.Money
	ItemCount          int
	DistanceToPickupKm float64
	CreatedAt          time.Time
}

// ListAvailableOrdersQueryResponse is one page. Len(Orders) may be below
// Limit even when later pages exist, because rows are filtered after fetching.
type ListAvailableOrdersQueryResponse struct {
	Orders []AvailableOrder
	Page   int
	Limit  int
}
