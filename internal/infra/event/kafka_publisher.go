package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"parking-system/internal/pkg/config"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  MessageWriter
	timeout time.Duration
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}
}

func NewKafkaPublisher(writer MessageWriter, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		writer:  writer,
		timeout: timeout,
	}
}

// Publish keys messages by registration so one vehicle's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, ev shared.TicketEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode ticket event")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Registration),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(ev.Type)},
		},
	})
	if err != nil {
		return errs.Wrapf(err, "failed to publish %s for ticket %d", ev.Type, ev.TicketID)
	}

	slog.Debug("ticket event published", "type", string(ev.Type), "ticket_id", ev.TicketID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, shared.TicketEvent) error { return nil }
