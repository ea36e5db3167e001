package courier

import (
	"errors"
	"fmt"
	"strings"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"
)

// MaxActiveOrders caps the ready or out-for-delivery orders one courier may hold.
const MaxActiveOrders = 3

// Rule sentinels, returned wrapped in errs.PreconditionFailedError.
var (
	ErrRiderNotActive    = errors.New("courier is not active")
	ErrMaxOrdersReached  = errors.New("courier already holds the maximum number of active orders")
	ErrLocationUnknown   = errors.New("courier location is unknown")
	ErrNameIsRequired    = errs.NewValueIsRequiredError("name")
	ErrCourierIsNotBuilt = errors.New("courier must be created via NewCourier constructor")
)

// Courier is the dispatch-facing courier profile. Its status and region are
// maintained by the courier onboarding system, so the core only reads them.
type Courier struct {
	id       kernel.UUID
	name     string
	status   OperatingStatus
	regionID kernel.UUID

	isConstructed bool
}

// NewCourier builds a profile.
//
// Parameters:
//   - id: courier identifier, also the courier's user id for notifications
//   - name: non-blank display name
//   - status: operating status
//   - regionID: the operating region
//
// Returns:
//   - *Courier: the profile
//   - error: joined validation errors
func NewCourier(id kernel.UUID, name string, status OperatingStatus, regionID kernel.UUID) (*Courier, error) {
	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = ErrNameIsRequired
	}

	if err := errors.Join(id.Validate(), nameErr, status.Validate(), regionID.Validate()); err != nil {
		return nil, err
	}

	return &Courier{
		id:            id,
		name:          name,
		status:        status,
		regionID:      regionID,
		isConstructed: true,
	}, nil
}

func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotBuilt
	}
	return nil
}

func (c *Courier) ID() kernel.UUID         { return c.id }
func (c *Courier) Name() string            { return c.name }
func (c *Courier) Status() OperatingStatus { return c.status }
func (c *Courier) RegionID() kernel.UUID   { return c.regionID }
func (c *Courier) IsActive() bool          { return c.status == Active }
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// CanAccept checks the preconditions for taking one more order given how many
// ready or out-for-delivery orders the courier already holds.
func (c *Courier) CanAccept(activeOrders int) error {
	if !c.IsActive() {
		return errs.NewPreconditionFailedErrorWithDetail(ErrRiderNotActive, "courier is "+c.status.String())
	}
	if activeOrders >= MaxActiveOrders {
		return errs.NewPreconditionFailedErrorWithDetail(ErrMaxOrdersReached,
			fmt.Sprintf("%d of %d active orders", activeOrders, MaxActiveOrders))
	}
	return nil
}
