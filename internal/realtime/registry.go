// Package realtime tracks live client connections and pushes events to them.
package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"

	"golang.org/x/sync/errgroup"
)

const DefaultSendTimeout = 5 * time.Second

// Sender is one live connection.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is the envelope written to every connection.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Registry maps users to their live connections. A user may hold several
// connections at once (several devices or tabs); Emit fans out to all of them.
type Registry struct {
	mu          sync.RWMutex
	conns       map[kernel.UUID]map[Sender]struct{}
	sendTimeout time.Duration
	logger      *slog.Logger
}

func NewRegistry(sendTimeout time.Duration, logger *slog.Logger) *Registry {
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}
	return &Registry{
		conns:       make(map[kernel.UUID]map[Sender]struct{}),
		sendTimeout: sendTimeout,
		logger:      logger.With("component", "RealtimeRegistry"),
	}
}

// Register adds conn for userID and returns the function removing it.
func (r *Registry) Register(userID kernel.UUID, conn Sender) func() {
	r.mu.Lock()
	set, ok := r.conns[userID]
	if !ok {
		set = make(map[Sender]struct{})
		r.conns[userID] = set
	}
	set[conn] = struct{}{}
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.unregister(userID, conn) })
	}
}

func (r *Registry) unregister(userID kernel.UUID, conn Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.conns[userID]
	delete(set, conn)
	if len(set) == 0 {
		delete(r.conns, userID)
	}
}

// Connections returns how many live connections userID holds.
func (r *Registry) Connections(userID kernel.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns[userID])
}

// Emit sends event to every connection of userID, each bounded by the send
// timeout. It returns the number of connections that accepted the message.
// Zero with a nil error means the user is offline.
func (r *Registry) Emit(ctx context.Context, userID kernel.UUID, event string, data any) (int, error) {
	r.mu.RLock()
	targets := make([]Sender, 0, len(r.conns[userID]))
	for conn := range r.conns[userID] {
		targets = append(targets, conn)
	}
	r.mu.RUnlock()

	if len(targets) == 0 {
		return 0, nil
	}

	msg := Message{Event: event, Data: data}
	var (
		mu        sync.Mutex
		delivered int
		sendErrs  []error
	)
	var g errgroup.Group
	for _, conn := range targets {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, r.sendTimeout)
			defer cancel()

			err := conn.Send(sendCtx, msg)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				sendErrs = append(sendErrs, err)
				return nil
			}
			delivered++
			return nil
		})
	}
	_ = g.Wait()

	if len(sendErrs) > 0 {
		r.logger.WarnContext(ctx, "realtime send failed",
			"user_id", userID.String(), "event", event, "failed", len(sendErrs), "delivered", delivered)
	}
	if delivered == 0 {
		return 0, errors.Join(sendErrs...)
	}
	return delivered, nil
}
