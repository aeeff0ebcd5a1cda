package commands

import (
	"context"
	"log/slog"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/shared"
)

type PoolCommands interface {
	// Initialize numbers CAR spots 1..cars and BIKE spots after them
	Initialize(ctx context.Context, cars, bikes int) ([]*parking.Spot, error)
	// Reset removes every ticket and spot
	Reset(ctx context.Context) error
	// SeedIfEmpty initializes the pool only when no spot exists yet
	SeedIfEmpty(ctx context.Context, cars, bikes int) (bool, error)
}

type poolCommandsImpl struct {
	uow   shared.UnitOfWork
	spots shared.SpotStore
	gate  *shared.OperationGate
}

func NewPoolCommands(uow shared.UnitOfWork, spots shared.SpotStore, gate *shared.OperationGate) PoolCommands {
	return &poolCommandsImpl{
		uow:   uow,
		spots: spots,
		gate:  gate,
	}
}

func (p *poolCommandsImpl) Initialize(ctx context.Context, cars, bikes int) ([]*parking.Spot, error) {
	var created []*parking.Spot
	err := p.gate.Do(func() error {
		var err error
		created, err = p.initialize(ctx, cars, bikes)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("parking pool initialized", "cars", cars, "bikes", bikes)
	return created, nil
}

func (p *poolCommandsImpl) initialize(ctx context.Context, cars, bikes int) ([]*parking.Spot, error) {
	if cars < 0 || bikes < 0 || cars+bikes == 0 {
		return nil, errs.MarkWithMessage(errs.ErrInvalidPoolSize,
			"pool needs at least one spot and no negative counts: cars=%d bikes=%d", cars, bikes)
	}

	spots, err := planPool(cars, bikes)
	if err != nil {
		return nil, err
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Spots().ListAll(ctx)
		if err != nil {
			return errs.Mark(errs.Wrap(err, "failed to inspect parking pool"), errs.ErrDatabase)
		}
		if len(existing) > 0 {
			return errs.MarkWithMessage(errs.ErrPoolNotEmpty, "parking pool already has %d spots", len(existing))
		}

		for _, spot := range spots {
			if err := tx.Spots().Insert(ctx, spot); err != nil {
				return errs.Mark(errs.Wrapf(err, "failed to insert spot %d", spot.ID()), errs.ErrDatabase)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return spots, nil
}

func (p *poolCommandsImpl) Reset(ctx context.Context) error {
	err := p.gate.Do(func() error {
		return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			// tickets reference spots, so they go first
			if err := tx.Tickets().DeleteAll(ctx); err != nil {
				return errs.Mark(errs.Wrap(err, "failed to delete tickets"), errs.ErrDatabase)
			}
			if err := tx.Spots().DeleteAll(ctx); err != nil {
				return errs.Mark(errs.Wrap(err, "failed to delete spots"), errs.ErrDatabase)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	slog.Info("parking pool reset")
	return nil
}

func (p *poolCommandsImpl) SeedIfEmpty(ctx context.Context, cars, bikes int) (bool, error) {
	existing, err := p.spots.ListAll(ctx)
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "failed to inspect parking pool"), errs.ErrDatabase)
	}
	if len(existing) > 0 {
		return false, nil
	}

	if _, err := p.Initialize(ctx, cars, bikes); err != nil {
		return false, err
	}
	return true, nil
}

func planPool(cars, bikes int) ([]*parking.Spot, error) {
	spots := make([]*parking.Spot, 0, cars+bikes)
	next := int32(1)
	for _, plan := range []struct {
		typ   parking.ParkingType
		count int
	}{
		{parking.TypeCar, cars},
		{parking.TypeBike, bikes},
	} {
		for i := 0; i < plan.count; i++ {
			spot, err := parking.NewSpot(next, plan.typ)
			if err != nil {
				return nil, err
			}
			spots = append(spots, spot)
			next++
		}
	}
	return spots, nil
}
