package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-SpaBookingService/pkg/metrics"
)

// MessageWriter часть *kafka.Writer, используемая издателем
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события записей в топик Kafka.
// Ключ сообщения - ID записи, поэтому события одной записи упорядочены в партиции.
type KafkaPublisher struct {
	writer  MessageWriter
	metrics *metrics.Metrics
}

// NewKafkaPublisher создает издателя для брокеров и топика
func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration, m *metrics.Metrics) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: writeTimeout,
	}
	return NewKafkaPublisherWithWriter(writer, m)
}

// NewKafkaPublisherWithWriter создает издателя поверх готового writer
func NewKafkaPublisherWithWriter(writer MessageWriter, m *metrics.Metrics) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, metrics: m}
}

// Publish отправляет событие
func (p *KafkaPublisher) Publish(ctx context.Context, evt AppointmentEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		p.metrics.IncEventPublishFailure(string(evt.Type))
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.AppointmentID, 10)),
		Value: value,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
			{Key: "event_id", Value: []byte(evt.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.metrics.IncEventPublishFailure(string(evt.Type))
		return fmt.Errorf("%w: %s appointment=%d: %v", ErrPublish, evt.Type, evt.AppointmentID, err)
	}

	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Noop издатель-заглушка, когда Kafka выключена в конфигурации
type Noop struct{}

func (Noop) Publish(context.Context, AppointmentEvent) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
