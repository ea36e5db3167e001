package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"freshdispatch/internal/core/domain/model/notification"

	"github.com/IBM/sarama"
)

// NotificationQueue publishes notification jobs to a Kafka topic. Messages
// are keyed by user id so one user's jobs stay on one partition in order.
type NotificationQueue struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewProducerConfig returns the sarama settings used for the job topic.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Timeout = 5 * time.Second
	return config
}

// NewNotificationQueue dials the brokers and returns a queue publishing to topic.
func NewNotificationQueue(brokers []string, topic string, logger *slog.Logger) (*NotificationQueue, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewNotificationQueueWithProducer(producer, topic, logger), nil
}

func NewNotificationQueueWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *NotificationQueue {
	return &NotificationQueue{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "NotificationQueue"),
	}
}

// Enqueue validates and publishes job. It blocks until the broker acknowledges.
func (q *NotificationQueue) Enqueue(ctx context.Context, job notification.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode notification job: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: q.topic,
		Key:   sarama.StringEncoder(job.UserID.String()),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(job.Type.String())},
		},
	}
	partition, offset, err := q.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish notification job: %w", err)
	}

	q.logger.DebugContext(ctx, "notification job published",
		"notification_id", job.NotificationID.String(), "topic", q.topic, "partition", partition, "offset", offset)
	return nil
}

func (q *NotificationQueue) Close() error {
	return q.producer.Close()
}
