package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/workers"

	"github.com/IBM/sarama"
)

type JobProcessor interface {
	Process(ctx context.Context, job notification.Job) notification.Result
}

type TaskSubmitter interface {
	Submit(ctx context.Context, task workers.Task) error
}

// NotificationJobsConsumer reads notification jobs from a consumer group and
// hands each one to the worker pool.
type NotificationJobsConsumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler *JobsHandler
	logger  *slog.Logger
}

func NewConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Offsets.AutoCommit.Enable = true
	config.Consumer.Offsets.AutoCommit.Interval = time.Second
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	return config
}

func NewNotificationJobsConsumer(
	brokers []string,
	groupID string,
	topic string,
	processor JobProcessor,
	pool TaskSubmitter,
	logger *slog.Logger,
) (*NotificationJobsConsumer, error) {
	group, err := sarama.NewConsumerGroup(brokers, groupID, NewConsumerConfig())
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer group: %w", err)
	}
	logger = logger.With("component", "NotificationJobsConsumer")
	return &NotificationJobsConsumer{
		group:   group,
		topics:  []string{topic},
		handler: NewJobsHandler(processor, pool, logger),
		logger:  logger,
	}, nil
}

// Run consumes until ctx is cancelled. Consume returns on every rebalance,
// so it is called in a loop.
func (c *NotificationJobsConsumer) Run(ctx context.Context) error {
	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.logger.ErrorContext(ctx, "consumer group error", "error", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *NotificationJobsConsumer) Close() error {
	return c.group.Close()
}

// JobsHandler is the sarama.ConsumerGroupHandler of the job topic.
//
// A message is marked before its job is processed, so a crash mid-delivery
// loses that job rather than sending it twice. Undecodable messages are
// marked and dropped.
type JobsHandler struct {
	processor JobProcessor
	pool      TaskSubmitter
	logger    *slog.Logger
}

func NewJobsHandler(processor JobProcessor, pool TaskSubmitter, logger *slog.Logger) *JobsHandler {
	return &JobsHandler{processor: processor, pool: pool, logger: logger}
}

func (h *JobsHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *JobsHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *JobsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.handle(ctx, session, msg); err != nil {
				return err
			}
		}
	}
}

func (h *JobsHandler) handle(ctx context.Context, session sarama.ConsumerGroupSession, msg *sarama.ConsumerMessage) error {
	var job notification.Job
	decodeErr := json.Unmarshal(msg.Value, &job)
	if decodeErr == nil {
		decodeErr = job.Validate()
	}
	session.MarkMessage(msg, "")

	if decodeErr != nil {
		h.logger.WarnContext(ctx, "dropping malformed notification job",
			"partition", msg.Partition, "offset", msg.Offset, "error", decodeErr)
		return nil
	}

	err := h.pool.Submit(ctx, func(taskCtx context.Context) {
		h.processor.Process(taskCtx, job)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		h.logger.ErrorContext(ctx, "failed to schedule notification job",
			"notification_id", job.NotificationID.String(), "error", err)
		return err
	}
	return nil
}
