package notifications

import (
	"context"
	"fmt"

	"ticketly/internal/shared/config"
)

// Service owns the full notification pipeline: the Kafka producer used by
// checkout and the consumer workers that deliver email.
type Service interface {
	Publisher() Publisher
	Start(ctx context.Context) error
	Stop() error
}

type kafkaService struct {
	producer Publisher
	consumer Consumer
}

// NewService builds the pipeline from configuration. Both sides share the
// broker list and topic.
func NewService(cfg *config.Config) (Service, error) {
	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.NotificationTopic = cfg.Kafka.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.NotificationTopic = cfg.Kafka.NotificationTopic
	consumerConfig.ConsumerGroup = cfg.Kafka.ConsumerGroup

	var mailer Mailer
	if cfg.Email.SMTPHost != "" {
		mailer = NewSMTPMailer(cfg.Email)
	} else {
		mailer = NewLogMailer()
	}

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, mailer)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	return &kafkaService{
		producer: producer,
		consumer: consumer,
	}, nil
}

func (s *kafkaService) Publisher() Publisher {
	return s.producer
}

func (s *kafkaService) Start(ctx context.Context) error {
	return s.consumer.Start(ctx)
}

func (s *kafkaService) Stop() error {
	consumerErr := s.consumer.Stop()
	producerErr := s.producer.Close()
	if consumerErr != nil {
		return consumerErr
	}
	return producerErr
}
