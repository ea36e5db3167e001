package notification

import (
	"strings"

	"freshdispatch/internal/core/domain/model/kernel"
)

// Contact is what the notification worker needs to reach a user.
type Contact struct {
	UserID        kernel.UUID
	Name          string
	Email         string
	EmailVerified bool
	Phone         string
	PushTokens    []string
}

func (c Contact) HasPhone() bool {
	return strings.TrimSpace(c.Phone) != ""
}

func (c Contact) HasVerifiedEmail() bool {
	return c.EmailVerified && strings.TrimSpace(c.Email) != ""
}

func (c Contact) HasPushTokens() bool {
	return len(c.PushTokens) > 0
}
