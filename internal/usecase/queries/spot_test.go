//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/queries"
	sharedmock "parking-system/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNextAvailableSpot(t *testing.T) {
	tests := []struct {
		name    string
		typ     parking.ParkingType
		setup   func(spots *sharedmock.MockSpotStore)
		wantID  int32
		wantNil bool
		wantErr error
	}{
		{
			name: "returns the lowest free spot",
			typ:  parking.TypeCar,
			setup: func(spots *sharedmock.MockSpotStore) {
				spots.EXPECT().FindNextAvailable(gomock.Any(), parking.TypeCar).
					Return(parking.ReconstructSpot(2, parking.TypeCar, true), nil)
			},
			wantID: 2,
		},
		{
			name: "full type returns nil without error",
			typ:  parking.TypeBike,
			setup: func(spots *sharedmock.MockSpotStore) {
				spots.EXPECT().FindNextAvailable(gomock.Any(), parking.TypeBike).Return(nil, nil)
			},
			wantNil: true,
		},
		{
			name:    "missing type",
			typ:     "",
			setup:   func(*sharedmock.MockSpotStore) {},
			wantErr: errs.ErrParkingTypeRequired,
		},
		{
			name:    "unsupported type",
			typ:     "BUS",
			setup:   func(*sharedmock.MockSpotStore) {},
			wantErr: parking.ErrUnsupportedParkingType,
		},
		{
			name: "store failure",
			typ:  parking.TypeCar,
			setup: func(spots *sharedmock.MockSpotStore) {
				spots.EXPECT().FindNextAvailable(gomock.Any(), parking.TypeCar).Return(nil, errors.New("timeout"))
			},
			wantErr: errs.ErrDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			spots := sharedmock.NewMockSpotStore(ctrl)
			tt.setup(spots)

			spot, err := queries.NewSpotQueries(spots).NextAvailableSpot(context.Background(), tt.typ)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Nil(t, spot)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, spot)
				return
			}
			require.NotNil(t, spot)
			assert.Equal(t, tt.wantID, spot.ID())
		})
	}
}

func TestNextAvailableSpot_RepeatedCallsReturnSameSpot(t *testing.T) {
	ctrl := gomock.NewController(t)
	spots := sharedmock.NewMockSpotStore(ctrl)
	pool := []*parking.Spot{
		parking.ReconstructSpot(1, parking.TypeCar, false),
		parking.ReconstructSpot(2, parking.TypeCar, true),
		parking.ReconstructSpot(3, parking.TypeCar, true),
	}
	// Reads only. A SetAvailability call would fail the test.
	spots.EXPECT().FindNextAvailable(gomock.Any(), parking.TypeCar).
		DoAndReturn(func(_ context.Context, typ parking.ParkingType) (*parking.Spot, error) {
			for _, sp := range pool {
				if sp.Type() == typ && sp.IsAvailable() {
					return parking.ReconstructSpot(sp.ID(), sp.Type(), true), nil
				}
			}
			return nil, nil
		}).Times(2)

	q := queries.NewSpotQueries(spots)
	first, err := q.NextAvailableSpot(context.Background(), parking.TypeCar)
	require.NoError(t, err)
	second, err := q.NextAvailableSpot(context.Background(), parking.TypeCar)
	require.NoError(t, err)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, int32(2), first.ID())
	assert.Equal(t, first.ID(), second.ID())
	assert.True(t, pool[1].IsAvailable())
}

func TestOccupancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	spots := sharedmock.NewMockSpotStore(ctrl)
	spots.EXPECT().ListAll(gomock.Any()).Return([]*parking.Spot{
		parking.ReconstructSpot(1, parking.TypeCar, false),
		parking.ReconstructSpot(2, parking.TypeCar, true),
		parking.ReconstructSpot(3, parking.TypeCar, true),
		parking.ReconstructSpot(4, parking.TypeBike, false),
	}, nil)

	views, err := queries.NewSpotQueries(spots).Occupancy(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []queries.OccupancyView{
		{Type: parking.TypeCar, Total: 3, Available: 2},
		{Type: parking.TypeBike, Total: 1, Available: 0},
	}, views)
}
