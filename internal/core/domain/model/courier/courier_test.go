package courier_test

import (
	"testing"
	"time"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("should create active courier", func(t *testing.T) {
		id, region := kernel.NewUUID(), kernel.NewUUID()

		c, err := courier.NewCourier(id, "  Tunde ", courier.Active, region)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Tunde", c.Name())
		assert.True(t, c.IsActive())
		assert.True(t, c.RegionID().IsEqual(region))
	})

	t.Run("should join validation errors", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.UUID{}, " ", courier.StatusUnknown, kernel.UUID{})

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		assert.Contains(t, err.Error(), "operatingStatus")
	})

	t.Run("zero value is not valid", func(t *testing.T) {
		assert.ErrorIs(t, (&courier.Courier{}).Validate(), courier.ErrCourierIsNotBuilt)
	})
}

func TestCourier_CanAccept(t *testing.T) {
	region := kernel.NewUUID()

	tests := []struct {
		name    string
		status  courier.OperatingStatus
		active  int
		wantErr error
	}{
		{"active with no orders", courier.Active, 0, nil},
		{"active with two orders", courier.Active, 2, nil},
		{"active at the cap", courier.Active, 3, courier.ErrMaxOrdersReached},
		{"inactive", courier.Inactive, 0, courier.ErrRiderNotActive},
		{"suspended at the cap reports status first", courier.Suspended, 3, courier.ErrRiderNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := courier.NewCourier(kernel.NewUUID(), "Ada", tt.status, region)
			require.NoError(t, err)

			err = c.CanAccept(tt.active)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		})
	}
}

func TestParseOperatingStatus(t *testing.T) {
	for _, name := range []string{"active", "inactive", "suspended"} {
		s, err := courier.ParseOperatingStatus(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	_, err := courier.ParseOperatingStatus("on-break")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewLocation(t *testing.T) {
	point, err := kernel.NewGeoPoint(6.45, 3.39)
	require.NoError(t, err)
	at := time.Now()

	loc, err := courier.NewLocation(kernel.NewUUID(), point, at)
	require.NoError(t, err)
	assert.Equal(t, point, loc.Point())
	assert.Equal(t, at, loc.UpdatedAt())

	_, err = courier.NewLocation(kernel.NewUUID(), kernel.GeoPoint{}, at)
	require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
}
