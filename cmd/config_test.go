package cmd_test

import (
	"testing"
	"time"

	"freshdispatch/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := cmd.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
		assert.Equal(t, 3, cfg.WorkerPoolSize)
		assert.Equal(t, 5*time.Minute, cfg.RebroadcastAge)
		assert.Equal(t, 10*time.Second, cfg.ChannelHTTPTimeout)
	})

	t.Run("should read environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
		t.Setenv("REBROADCAST_AGE", "90s")
		t.Setenv("WORKER_POOL_SIZE", "8")

		cfg, err := cmd.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
		assert.Equal(t, 90*time.Second, cfg.RebroadcastAge)
		assert.Equal(t, 8, cfg.WorkerPoolSize)
	})

	t.Run("should reject a malformed duration", func(t *testing.T) {
		t.Setenv("REALTIME_SEND_TIMEOUT", "soon")

		_, err := cmd.LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "REALTIME_SEND_TIMEOUT")
	})

	t.Run("should reject an empty broker list", func(t *testing.T) {
		t.Setenv("KAFKA_BROKERS", " , ")

		_, err := cmd.LoadConfig()

		require.Error(t, err)
	})

	t.Run("should build the postgres dsn", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_NAME", "orders")

		cfg, err := cmd.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "host=db port=5432 user=postgres password=postgres dbname=orders sslmode=disable", cfg.PostgresDSN())
	})
}
