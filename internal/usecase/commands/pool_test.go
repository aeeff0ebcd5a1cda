//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/commands"
	"parking-system/internal/usecase/shared"
	sharedmock "parking-system/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type poolFixture struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	txSpots *sharedmock.MockSpotStore
	txTicks *sharedmock.MockTicketStore
	spots   *sharedmock.MockSpotStore
}

func newPoolFixture(t *testing.T) *poolFixture {
	ctrl := gomock.NewController(t)
	f := &poolFixture{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		txSpots: sharedmock.NewMockSpotStore(ctrl),
		txTicks: sharedmock.NewMockTicketStore(ctrl),
		spots:   sharedmock.NewMockSpotStore(ctrl),
	}
	f.tx.EXPECT().Spots().Return(f.txSpots).AnyTimes()
	f.tx.EXPECT().Tickets().Return(f.txTicks).AnyTimes()
	return f
}

func (f *poolFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func (f *poolFixture) commands() commands.PoolCommands {
	return commands.NewPoolCommands(f.uow, f.spots, shared.NewOperationGate())
}

func TestPoolInitialize(t *testing.T) {
	t.Run("numbers car spots first then bikes", func(t *testing.T) {
		f := newPoolFixture(t)
		f.expectWithin()
		f.txSpots.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		var inserted []*parking.Spot
		f.txSpots.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *parking.Spot) error {
				inserted = append(inserted, s)
				return nil
			}).Times(5)

		spots, err := f.commands().Initialize(context.Background(), 3, 2)
		require.NoError(t, err)
		require.Len(t, spots, 5)
		assert.Equal(t, spots, inserted)

		wantTypes := []parking.ParkingType{
			parking.TypeCar, parking.TypeCar, parking.TypeCar, parking.TypeBike, parking.TypeBike,
		}
		for i, s := range spots {
			assert.Equal(t, int32(i+1), s.ID())
			assert.Equal(t, wantTypes[i], s.Type())
			assert.True(t, s.IsAvailable())
		}
	})

	t.Run("bikes only", func(t *testing.T) {
		f := newPoolFixture(t)
		f.expectWithin()
		f.txSpots.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.txSpots.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		spots, err := f.commands().Initialize(context.Background(), 0, 2)
		require.NoError(t, err)
		require.Len(t, spots, 2)
		assert.Equal(t, int32(1), spots[0].ID())
		assert.Equal(t, parking.TypeBike, spots[0].Type())
	})

	t.Run("rejects invalid sizes without touching storage", func(t *testing.T) {
		for _, size := range [][2]int{{0, 0}, {-1, 2}, {2, -1}} {
			f := newPoolFixture(t)
			_, err := f.commands().Initialize(context.Background(), size[0], size[1])
			assert.True(t, errs.Is(err, errs.ErrInvalidPoolSize), "cars=%d bikes=%d", size[0], size[1])
		}
	})

	t.Run("refuses a pool that already has spots", func(t *testing.T) {
		f := newPoolFixture(t)
		f.expectWithin()
		f.txSpots.EXPECT().ListAll(gomock.Any()).
			Return([]*parking.Spot{parking.ReconstructSpot(1, parking.TypeCar, true)}, nil)

		_, err := f.commands().Initialize(context.Background(), 1, 1)
		assert.True(t, errs.Is(err, errs.ErrPoolNotEmpty))
	})

	t.Run("insert failure is a database error", func(t *testing.T) {
		f := newPoolFixture(t)
		f.expectWithin()
		f.txSpots.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.txSpots.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

		_, err := f.commands().Initialize(context.Background(), 2, 0)
		assert.True(t, errs.Is(err, errs.ErrDatabase))
	})
}

func TestPoolReset(t *testing.T) {
	t.Run("deletes tickets before spots", func(t *testing.T) {
		f := newPoolFixture(t)
		f.expectWithin()
		gomock.InOrder(
			f.txTicks.EXPECT().DeleteAll(gomock.Any()).Return(nil),
			f.txSpots.EXPECT().DeleteAll(gomock.Any()).Return(nil),
		)

		require.NoError(t, f.commands().Reset(context.Background()))
	})

	t.Run("stops when tickets cannot be deleted", func(t *testing.T) {
		f := newPoolFixture(t)
		f.expectWithin()
		f.txTicks.EXPECT().DeleteAll(gomock.Any()).Return(errors.New("lock timeout"))

		err := f.commands().Reset(context.Background())
		assert.True(t, errs.Is(err, errs.ErrDatabase))
	})
}

func TestPoolSeedIfEmpty(t *testing.T) {
	t.Run("seeds an empty pool", func(t *testing.T) {
		f := newPoolFixture(t)
		f.spots.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.expectWithin()
		f.txSpots.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		f.txSpots.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		seeded, err := f.commands().SeedIfEmpty(context.Background(), 2, 1)
		require.NoError(t, err)
		assert.True(t, seeded)
	})

	t.Run("leaves an existing pool alone", func(t *testing.T) {
		f := newPoolFixture(t)
		f.spots.EXPECT().ListAll(gomock.Any()).
			Return([]*parking.Spot{parking.ReconstructSpot(1, parking.TypeCar, false)}, nil)

		seeded, err := f.commands().SeedIfEmpty(context.Background(), 2, 1)
		require.NoError(t, err)
		assert.False(t, seeded)
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := newPoolFixture(t)
		f.spots.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("no connection"))

		seeded, err := f.commands().SeedIfEmpty(context.Background(), 2, 1)
		assert.False(t, seeded)
		assert.True(t, errs.Is(err, errs.ErrDatabase))
	})
}
