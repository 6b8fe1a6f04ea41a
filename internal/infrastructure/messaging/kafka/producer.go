package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/zainulabideendev/estateplan/internal/config"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// writerInterface abstracts kafka.Writer for testing.
type writerInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes plan mutation events to a Kafka topic. It implements
// plan.Publisher. Messages are keyed by profile id so one profile's events
// land on one partition in order.
type Producer struct {
	writer writerInterface
	topic  string
	logger logging.Logger
	closed atomic.Bool

	sent   atomic.Int64
	failed atomic.Int64
}

// NewProducer builds a Producer from the kafka config section.
func NewProducer(cfg config.KafkaConfig, log logging.Logger) *Producer {
	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 10 * time.Second
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: writeTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
	}
	return &Producer{writer: writer, topic: topic, logger: log.Named("kafka")}
}

// newProducerWithWriter wires a custom writer (for testing).
func newProducerWithWriter(w writerInterface, topic string, log logging.Logger) *Producer {
	return &Producer{writer: w, topic: topic, logger: log}
}

// PlanMutated publishes one plan mutation event.
func (p *Producer) PlanMutated(ctx context.Context, event plan.Event) error {
	if p.closed.Load() {
		return errors.New(errors.ErrCodeServiceUnavailable, "producer closed")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode event")
	}
	envelope := EventEnvelope{
		EventID:       uuid.NewString(),
		EventType:     string(event.Kind),
		Source:        envelopeSource,
		Timestamp:     time.Now().UTC(),
		SchemaVersion: envelopeSchemaVersion,
		Payload:       payload,
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode envelope")
	}

	msg := kafka.Message{
		Key:   []byte(event.ProfileID),
		Value: value,
		Time:  envelope.Timestamp,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.failed.Add(1)
		p.logger.Error("failed to publish plan event",
			logging.String("topic", p.topic),
			logging.String("profile_id", event.ProfileID),
			logging.String("kind", string(event.Kind)),
			logging.Err(err),
		)
		return errors.Wrap(err, errors.ErrCodeServiceUnavailable, "failed to publish plan event")
	}
	p.sent.Add(1)
	return nil
}

// Sent returns the number of successfully published events.
func (p *Producer) Sent() int64 { return p.sent.Load() }

// Failed returns the number of publish failures.
func (p *Producer) Failed() int64 { return p.failed.Load() }

// Close flushes and shuts the writer down.
func (p *Producer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to close kafka writer")
	}
	return nil
}
