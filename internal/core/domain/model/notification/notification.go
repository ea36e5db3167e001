package notification

import (
	"errors"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
)

// Notification is the persisted record a user sees in their inbox. Delivery
// outcomes are recorded here as per-channel sent flags, never on the Job.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	kind      Type
	title     string
	message   string
	payload   map[string]any
	channels  []Channel
	sent      map[Channel]bool
	read      bool
	createdAt time.Time
}

// NewNotification creates an unread record with no channel sent yet.
func NewNotification(
	userID kernel.UUID,
	kind Type,
	title, message string,
	payload map[string]any,
	channels []Channel,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		id:        kernel.NewUUID(),
		userID:    userID,
		kind:      kind,
		title:     title,
		message:   message,
		payload:   payload,
		channels:  append([]Channel(nil), channels...),
		sent:      map[Channel]bool{},
		createdAt: createdAt,
	}
	if err := n.Job().Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// RestoreNotification rebuilds a stored record.
func RestoreNotification(
	id, userID kernel.UUID,
	kind Type,
	title, message string,
	payload map[string]any,
	channels []Channel,
	sent map[Channel]bool,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	if sent == nil {
		sent = map[Channel]bool{}
	}
	return &Notification{
		id: id, userID: userID, kind: kind, title: title, message: message,
		payload: payload, channels: channels, sent: sent, read: read, createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() kernel.UUID         { return n.id }
func (n *Notification) UserID() kernel.UUID     { return n.userID }
func (n *Notification) Type() Type              { return n.kind }
func (n *Notification) Title() string           { return n.title }
func (n *Notification) Message() string         { return n.message }
func (n *Notification) Payload() map[string]any { return n.payload }
func (n *Notification) Channels() []Channel     { return n.channels }
func (n *Notification) IsRead() bool            { return n.read }
func (n *Notification) CreatedAt() time.Time    { return n.createdAt }

// IsSent reports whether channel c already delivered this notification.
func (n *Notification) IsSent(c Channel) bool {
	return n.sent[c]
}

func (n *Notification) MarkSent(c Channel) {
	n.sent[c] = true
}

func (n *Notification) MarkRead() {
	n.read = true
}

// Job derives the queue message for this record.
func (n *Notification) Job() Job {
	return Job{
		NotificationID: n.id,
		UserID:         n.userID,
		Type:           n.kind,
		Title:          n.title,
		Message:        n.message,
		Payload:        n.payload,
		Channels:       n.channels,
		CreatedAt:      n.createdAt,
	}
}
