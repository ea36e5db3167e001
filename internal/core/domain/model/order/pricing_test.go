package order_test

import (
	"testing"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDeliveryFee(t *testing.T) {
	t.Run("should be free for pickup distance whatever the item count", func(t *testing.T) {
		for _, n := range []int{0, 1, 5, 6, 100} {
			assert.Equal(t, kernel.Money(0), order.CalculateDeliveryFee(0, n))
		}
	})

	t.Run("should charge per started 3 km block plus extra items fee", func(t *testing.T) {
		assert.Equal(t, kernel.Money(180000), order.CalculateDeliveryFee(9, 6))
	})

	tests := []struct {
		name      string
		distance  float64
		itemCount int
		expected  kernel.Money
	}{
		{"short trip gets minimum fee", 1, 1, 50000},
		{"exactly 3 km is still minimum", 3, 5, 50000},
		{"just over 3 km starts a second block", 3.01, 5, 80000},
		{"threshold item count has no surcharge", 6, 5, 80000},
		{"one item over threshold adds surcharge", 6, 6, 140000},
		{"minimum fee with surcharge", 0.5, 10, 110000},
		{"long trip", 14.2, 2, 200000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, order.CalculateDeliveryFee(tt.distance, tt.itemCount))
		})
	}
}

func TestCalculateETA(t *testing.T) {
	bread, err := order.NewItem("Bread", 2, 150000, 10)
	require.NoError(t, err)
	soup, err := order.NewItem("Pepper soup", 1, 350000, 25)
	require.NoError(t, err)
	items := []order.Item{bread, soup}

	t.Run("should use the longest preparation for pickup", func(t *testing.T) {
		assert.Equal(t, 25, order.CalculateETA(items, 0, order.Pickup))
		assert.Equal(t, 25, order.CalculateETA(items, 12, order.Pickup))
	})

	t.Run("should add rounded travel minutes for door delivery", func(t *testing.T) {
		// 4.5 km * 3 min/km = 13.5 -> 14
		assert.Equal(t, 39, order.CalculateETA(items, 4.5, order.DoorDelivery))
	})

	t.Run("should be zero without items", func(t *testing.T) {
		assert.Equal(t, 0, order.CalculateETA(nil, 0, order.Pickup))
	})
}

func TestNewBreakdown(t *testing.T) {
	b := order.NewBreakdown(500000, 20000, 80000, 10000)
	assert.Equal(t, kernel.Money(590000), b.Total)

	floored := order.NewBreakdown(1000, 0, 0, 5000)
	assert.Equal(t, kernel.Money(0), floored.Total)
}
