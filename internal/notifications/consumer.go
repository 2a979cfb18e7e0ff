package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"ticketly/pkg/logger"
)

// Consumer drains the notification topic and hands messages to the mailer.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type ConsumerConfig struct {
	Brokers           []string
	NotificationTopic string
	ConsumerGroup     string
	SessionTimeoutMs  int
	MaxRetries        int
	RetryBackoff      time.Duration
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:           []string{"localhost:9092"},
		NotificationTopic: "ticketly-notifications",
		ConsumerGroup:     "ticketly-notification-workers",
		SessionTimeoutMs:  30000,
		MaxRetries:        3,
		RetryBackoff:      2 * time.Second,
	}
}

type KafkaNotificationConsumer struct {
	group  sarama.ConsumerGroup
	config *ConsumerConfig
	mailer Mailer
	logger *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewKafkaNotificationConsumer(config *ConsumerConfig, mailer Mailer) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(config.Brokers, config.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	return &KafkaNotificationConsumer{
		group:  group,
		config: config,
		mailer: mailer,
		logger: logger.GetDefault(),
	}, nil
}

func (knc *KafkaNotificationConsumer) Start(ctx context.Context) error {
	consumeCtx, cancel := context.WithCancel(ctx)
	knc.cancel = cancel

	knc.wg.Add(1)
	go func() {
		defer knc.wg.Done()
		handler := &consumerGroupHandler{mailer: knc.mailer, config: knc.config, logger: knc.logger}
		for {
			if err := knc.group.Consume(consumeCtx, []string{knc.config.NotificationTopic}, handler); err != nil {
				knc.logger.Error("consumer group error", slog.Any("error", err))
			}
			if consumeCtx.Err() != nil {
				return
			}
		}
	}()

	knc.wg.Add(1)
	go func() {
		defer knc.wg.Done()
		for err := range knc.group.Errors() {
			knc.logger.Error("kafka consumer error", slog.Any("error", err))
		}
	}()

	return nil
}

func (knc *KafkaNotificationConsumer) Stop() error {
	if knc.cancel != nil {
		knc.cancel()
	}
	err := knc.group.Close()
	knc.wg.Wait()
	return err
}

type consumerGroupHandler struct {
	mailer Mailer
	config *ConsumerConfig
	logger *logger.Logger
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := h.processMessage(session.Context(), message); err != nil {
			h.logger.Error("failed to process notification",
				slog.Any("error", err),
				slog.Int64("offset", message.Offset),
			)
		}
		// Mark regardless: failed messages exhausted their retries
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *consumerGroupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var notification EmailNotification
	if err := json.Unmarshal(message.Value, &notification); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	return h.sendWithRetry(ctx, &notification)
}

func (h *consumerGroupHandler) sendWithRetry(ctx context.Context, notification *EmailNotification) error {
	var lastErr error

	for notification.RetryCount = 0; notification.RetryCount <= h.config.MaxRetries; notification.RetryCount++ {
		if err := h.mailer.Send(ctx, notification); err != nil {
			lastErr = err
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(h.config.RetryBackoff * time.Duration(notification.RetryCount+1)):
			}
			continue
		}
		notification.MarkSent()
		return nil
	}

	notification.MarkFailed()
	return fmt.Errorf("delivery failed after %d attempts: %w", h.config.MaxRetries+1, lastErr)
}
