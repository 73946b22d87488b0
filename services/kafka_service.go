package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// KafkaService publishes change events to a Kafka topic.
type KafkaService struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaService connects a sync producer to the brokers.
func NewKafkaService(brokers []string, topic string) (*KafkaService, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}
	log.Println("kafka: producer connected")
	return NewKafkaServiceWithProducer(producer, topic), nil
}

func NewKafkaServiceWithProducer(producer sarama.SyncProducer, topic string) *KafkaService {
	return &KafkaService{producer: producer, topic: topic}
}

// Publish sends the event as JSON keyed by collection.
func (s *KafkaService) Publish(_ context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(ev.Collection),
		Value: sarama.ByteEncoder(body),
	}
	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send to %s: %w", s.topic, err)
	}
	log.Printf("kafka: %s.%s #%d -> %s[%d]@%d", ev.Collection, ev.Action, ev.ID, s.topic, partition, offset)
	return nil
}

func (s *KafkaService) Close() error {
	return s.producer.Close()
}
