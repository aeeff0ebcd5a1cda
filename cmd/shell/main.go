package main

import (
	"context"
	"log/slog"
	"os"

	"parking-system/cmd/bootstrap"
	"parking-system/cmd/bootstrap/components"
	"parking-system/internal/shell"
	"parking-system/internal/usecase/commands"

	"go.uber.org/fx"
)

func main() {
	var (
		parkingCommands commands.ParkingCommands
		logger          *slog.Logger
	)

	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		bootstrap.EventModule,
		bootstrap.NoopMetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		fx.Populate(&parkingCommands, &logger),
		fx.NopLogger,
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	sh := shell.New(parkingCommands, shell.NewInputReader(os.Stdin), os.Stdout, logger)
	runErr := sh.Run(ctx)

	if err := app.Stop(ctx); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}
	if runErr != nil {
		slog.Error("シェルが異常終了しました", "error", runErr)
		os.Exit(1)
	}
}
