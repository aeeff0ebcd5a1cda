//go:build unit

package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"parking-system/internal/pkg/config"
	"parking-system/internal/usecase/shared"
	"parking-system/tests/common/builder"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	ticket := builder.NewTicketBuilder().WithID(3).WithSpotID(2).WithRegistration("AB-123").BuildReconstructed()
	ev := shared.NewTicketEvent(shared.TicketOpened, ticket, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	t.Run("success", func(t *testing.T) {
		w := &fakeWriter{}
		pub := NewKafkaPublisher(w, time.Second)

		require.NoError(t, pub.Publish(context.Background(), ev))
		require.Len(t, w.msgs, 1)

		msg := w.msgs[0]
		assert.Equal(t, "AB-123", string(msg.Key))
		assert.Equal(t, "ticket.opened", string(msg.Headers[0].Value))

		var decoded shared.TicketEvent
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, int64(3), decoded.TicketID)
		assert.Equal(t, int32(2), decoded.SpotID)
		assert.Nil(t, decoded.OutTime)
	})

	t.Run("writer failure", func(t *testing.T) {
		pub := NewKafkaPublisher(&fakeWriter{err: assert.AnError}, 0)

		err := pub.Publish(context.Background(), ev)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "ticket 3")
	})

	t.Run("close", func(t *testing.T) {
		w := &fakeWriter{}
		require.NoError(t, NewKafkaPublisher(w, 0).Close())
		assert.True(t, w.closed)
	})
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter(kafkaConfig())
	assert.Equal(t, "parking.tickets", w.Topic)
	assert.Equal(t, "kafka:9092", w.Addr.String())
}

func kafkaConfig() config.KafkaConfig {
	return config.KafkaConfig{
		Brokers:      []string{"kafka:9092"},
		Topic:        "parking.tickets",
		WriteTimeout: time.Second,
	}
}
