package queries

import (
	"context"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/shared"
)

type OccupancyView struct {
	Type      parking.ParkingType
	Total     int
	Available int
}

type SpotQueries interface {
	// NextAvailableSpot returns nil without error when the type is full
	NextAvailableSpot(ctx context.Context, t parking.ParkingType) (*parking.Spot, error)
	ListSpots(ctx context.Context) ([]*parking.Spot, error)
	Occupancy(ctx context.Context) ([]OccupancyView, error)
}

type spotQueriesImpl struct {
	spots shared.SpotStore
}

func NewSpotQueries(spots shared.SpotStore) SpotQueries {
	return &spotQueriesImpl{spots: spots}
}

func (q *spotQueriesImpl) NextAvailableSpot(ctx context.Context, t parking.ParkingType) (*parking.Spot, error) {
	return NextAvailableSpot(ctx, q.spots, t)
}

func (q *spotQueriesImpl) ListSpots(ctx context.Context) ([]*parking.Spot, error) {
	spots, err := q.spots.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list spots"), errs.ErrDatabase)
	}
	return spots, nil
}

func (q *spotQueriesImpl) Occupancy(ctx context.Context) ([]OccupancyView, error) {
	spots, err := q.ListSpots(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[parking.ParkingType]*OccupancyView, len(parking.AllTypes))
	views := make([]OccupancyView, len(parking.AllTypes))
	for i, t := range parking.AllTypes {
		views[i].Type = t
		byType[t] = &views[i]
	}
	for _, s := range spots {
		v, ok := byType[s.Type()]
		if !ok {
			continue
		}
		v.Total++
		if s.IsAvailable() {
			v.Available++
		}
	}
	return views, nil
}

// NextAvailableSpot validates the type and asks the store for the lowest free
// spot. A nil spot with a nil error means the type is full.
func NextAvailableSpot(ctx context.Context, spots shared.SpotStore, t parking.ParkingType) (*parking.Spot, error) {
	if t == "" {
		return nil, errs.ErrParkingTypeRequired
	}
	if !t.IsValid() {
		return nil, errs.MarkWithMessage(parking.ErrUnsupportedParkingType, "unsupported parking type %q", string(t))
	}

	spot, err := spots.FindNextAvailable(ctx, t)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "failed to find an available %s spot", t), errs.ErrDatabase)
	}
	return spot, nil
}
