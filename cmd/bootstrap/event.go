package bootstrap

import (
	"context"
	"log/slog"

	"parking-system/internal/infra/event"
	"parking-system/internal/pkg/config"
	"parking-system/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventModule = fx.Module("event",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns a no-op publisher when no Kafka broker is configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if !cfg.Kafka.Enabled() {
		logger.Info("Kafkaブローカー未設定のためイベント送信を無効化します")
		return event.NoopPublisher{}
	}

	publisher := event.NewKafkaPublisher(event.NewKafkaWriter(cfg.Kafka), cfg.Kafka.WriteTimeout)
	logger.Info("Kafkaへのイベント送信を有効化しました", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
