package notifications_test

import (
	"context"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockContactRepository struct{ mock.Mock }

func (m *MockContactRepository) Get(ctx context.Context, userID kernel.UUID) (notification.Contact, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(notification.Contact), args.Error(1)
}

func (m *MockContactRepository) RemovePushTokens(ctx context.Context, userID kernel.UUID, tokens []string) error {
	args := m.Called(ctx, userID, tokens)
	return args.Error(0)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkChannelSent(ctx context.Context, id kernel.UUID, c notification.Channel) error {
	args := m.Called(ctx, id, c)
	return args.Error(0)
}

type MockQueue struct{ mock.Mock }

func (m *MockQueue) Enqueue(ctx context.Context, job notification.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

type MockEmitter struct{ mock.Mock }

func (m *MockEmitter) Emit(ctx context.Context, userID kernel.UUID, event string, data any) (int, error) {
	args := m.Called(ctx, userID, event, data)
	return args.Int(0), args.Error(1)
}

type MockPushSender struct{ mock.Mock }

func (m *MockPushSender) Send(
	ctx context.Context, tokens []string, title, body string, data map[string]any,
) (ports.PushReport, error) {
	args := m.Called(ctx, tokens, title, body, data)
	return args.Get(0).(ports.PushReport), args.Error(1)
}

type MockSMSSender struct{ mock.Mock }

func (m *MockSMSSender) Send(ctx context.Context, phone, text string) error {
	args := m.Called(ctx, phone, text)
	return args.Error(0)
}

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
