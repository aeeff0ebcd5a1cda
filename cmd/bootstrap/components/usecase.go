package components

import (
	"context"
	"log/slog"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/clock"
	"parking-system/internal/pkg/config"
	"parking-system/internal/pkg/ticketqr"
	"parking-system/internal/usecase"
	"parking-system/internal/usecase/commands"
	"parking-system/internal/usecase/queries"
	"parking-system/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(seedPool),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewOperationGate,
	fx.Annotate(
		parking.NewDefaultFareCalculator,
		fx.As(new(parking.FareCalculator)),
	),
	func(cfg config.Config, tickets shared.TicketStore) commands.DiscountPolicy {
		return commands.NewDiscountPolicy(cfg.Parking.LoyaltyDiscount, tickets)
	},
	func(cfg config.Config) commands.OperatorAccount {
		return commands.OperatorAccount{
			Username:     cfg.Auth.OperatorUsername,
			PasswordHash: cfg.Auth.OperatorPasswordHash,
		}
	},
	fx.Annotate(
		func(cfg config.Config) *ticketqr.Generator { return ticketqr.NewGenerator(cfg.Ticket.QRSize) },
		fx.As(new(queries.QRRenderer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewParkingCommands,
		commands.NewPoolCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSpotQueries,
		queries.NewTicketQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func seedPool(lc fx.Lifecycle, cfg config.Config, pool commands.PoolCommands, logger *slog.Logger) {
	if !cfg.Parking.SeedOnStart {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seeded, err := pool.SeedIfEmpty(ctx, cfg.Parking.CarSpots, cfg.Parking.BikeSpots)
			if err != nil {
				return err
			}
			if seeded {
				logger.Info("駐車スペースを初期化しました",
					"cars", cfg.Parking.CarSpots, "bikes", cfg.Parking.BikeSpots)
			}
			return nil
		},
	})
}
