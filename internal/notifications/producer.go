package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"ticketly/pkg/logger"
)

// Publisher is the checkout-facing side of the notification pipeline.
type Publisher interface {
	PublishPurchase(ctx context.Context, purchase PurchaseEvent) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka notification producer
type KafkaProducerConfig struct {
	Brokers           []string
	NotificationTopic string
	RetryMax          int
	TimeoutMs         int
	RequiredAcks      sarama.RequiredAcks
	CompressionType   sarama.CompressionCodec
	IdempotentWrites  bool
	MaxMessageBytes   int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:           []string{"localhost:9092"},
		NotificationTopic: "ticketly-notifications",
		RetryMax:          3,
		TimeoutMs:         10000,
		RequiredAcks:      sarama.WaitForAll,
		CompressionType:   sarama.CompressionSnappy,
		IdempotentWrites:  true,
		MaxMessageBytes:   1000000, // 1MB
	}
}

// KafkaNotificationProducer publishes purchase notifications to Kafka.
type KafkaNotificationProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	logger   *logger.Logger
}

func NewKafkaNotificationProducer(config *KafkaProducerConfig) (Publisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps per-recipient ordering
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaNotificationProducer{
		producer: producer,
		config:   config,
		logger:   logger.GetDefault(),
	}, nil
}

// PublishPurchase fans one purchase out into the buyer confirmation and the
// seller sale notice.
func (knp *KafkaNotificationProducer) PublishPurchase(ctx context.Context, purchase PurchaseEvent) error {
	for _, notification := range notificationsFromPurchase(purchase) {
		if err := knp.publish(ctx, notification); err != nil {
			return err
		}
	}
	return nil
}

func (knp *KafkaNotificationProducer) publish(ctx context.Context, notification *EmailNotification) error {
	notification.Status = StatusQueued
	notification.UpdatedAt = time.Now()

	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: knp.config.NotificationTopic,
		Key:   sarama.StringEncoder(notification.GetPartitionKey()),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification_type"), Value: []byte(notification.Type)},
			{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
		},
		Timestamp: notification.CreatedAt,
	}

	partition, offset, err := knp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	knp.logger.Debug("notification published",
		slog.String("notification_id", notification.ID.String()),
		slog.String("type", string(notification.Type)),
		slog.Int64("partition", int64(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

func (knp *KafkaNotificationProducer) Close() error {
	return knp.producer.Close()
}
