package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"

	"golang.org/x/net/websocket"
)

// UserIDParam is the query parameter identifying the connecting user.
const UserIDParam = "userId"

type wsConn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *wsConn) Send(ctx context.Context, msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(DefaultSendTimeout)
	}
	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return websocket.JSON.Send(c.ws, msg)
}

// Handler upgrades GET /ws?userId=<uuid> to a WebSocket and keeps the
// connection registered until the client goes away. Inbound frames are
// read and discarded.
func Handler(registry *Registry, logger *slog.Logger) http.Handler {
	logger = logger.With("component", "RealtimeHandler")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := kernel.UUIDFromString(r.URL.Query().Get(UserIDParam))
		if err != nil {
			http.Error(w, "userId must be a valid uuid", http.StatusBadRequest)
			return
		}

		server := websocket.Server{
			// Non-browser clients send no Origin header.
			Handshake: func(*websocket.Config, *http.Request) error { return nil },
			Handler: func(ws *websocket.Conn) {
				defer ws.Close()

				unregister := registry.Register(userID, &wsConn{ws: ws})
				defer unregister()
				logger.Info("realtime client connected", "user_id", userID.String())

				var discard string
				for {
					if err := websocket.Message.Receive(ws, &discard); err != nil {
						break
					}
				}
				logger.Info("realtime client disconnected", "user_id", userID.String())
			},
		}
		server.ServeHTTP(w, r)
	})
}
