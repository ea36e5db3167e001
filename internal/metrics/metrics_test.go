package metrics_test

import (
	"testing"

	"freshdispatch/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("should register every collector once", func(t *testing.T) {
		reg := prometheus.NewRegistry()

		require.NotPanics(t, func() { metrics.Register(reg) })
		assert.Panics(t, func() { metrics.Register(reg) })
	})

	t.Run("should count by label", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.OrderTransitionsTotal.WithLabelValues("ready", "out-for-delivery"))

		metrics.OrderTransitionsTotal.WithLabelValues("ready", "out-for-delivery").Inc()

		after := testutil.ToFloat64(metrics.OrderTransitionsTotal.WithLabelValues("ready", "out-for-delivery"))
		assert.InDelta(t, before+1, after, 1e-9)
	})
}
