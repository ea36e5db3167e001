package realtime_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func TestHandler(t *testing.T) {
	t.Run("should deliver emitted events to the socket", func(t *testing.T) {
		registry := realtime.NewRegistry(time.Second, discardLogger())
		srv := httptest.NewServer(realtime.Handler(registry, discardLogger()))
		defer srv.Close()

		user := kernel.NewUUID()
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?userId=" + user.String()
		ws, err := websocket.Dial(url, "", srv.URL)
		require.NoError(t, err)
		defer ws.Close()

		require.Eventually(t, func() bool { return registry.Connections(user) == 1 }, time.Second, 5*time.Millisecond)

		n, err := registry.Emit(context.Background(), user, "new_order_available", map[string]any{"orderNumber": "ORD-1"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		var got struct {
			Event string         `json:"event"`
			Data  map[string]any `json:"data"`
		}
		require.NoError(t, ws.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, websocket.JSON.Receive(ws, &got))
		assert.Equal(t, "new_order_available", got.Event)
		assert.Equal(t, "ORD-1", got.Data["orderNumber"])
	})

	t.Run("should unregister when the client disconnects", func(t *testing.T) {
		registry := realtime.NewRegistry(time.Second, discardLogger())
		srv := httptest.NewServer(realtime.Handler(registry, discardLogger()))
		defer srv.Close()

		user := kernel.NewUUID()
		ws, err := websocket.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/?userId="+user.String(), "", srv.URL)
		require.NoError(t, err)
		require.Eventually(t, func() bool { return registry.Connections(user) == 1 }, time.Second, 5*time.Millisecond)

		require.NoError(t, ws.Close())

		require.Eventually(t, func() bool { return registry.Connections(user) == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("should reject a missing user id", func(t *testing.T) {
		srv := httptest.NewServer(realtime.Handler(realtime.NewRegistry(0, discardLogger()), discardLogger()))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/ws")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
