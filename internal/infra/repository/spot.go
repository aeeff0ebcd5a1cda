package repository

import (
	"context"

	"parking-system/internal/domain/parking"
	"parking-system/internal/infra"
	"parking-system/internal/infra/repository/converter"
	sqlc "parking-system/internal/infra/sqlc/generated"
	"parking-system/internal/pkg/pgconv"
)

type SpotQueries interface {
	GetNextAvailableSpot(ctx context.Context, db sqlc.DBTX, type_ string) (sqlc.Parking, error)
	GetSpot(ctx context.Context, db sqlc.DBTX, parkingNumber int32) (sqlc.Parking, error)
	ListSpots(ctx context.Context, db sqlc.DBTX) ([]sqlc.Parking, error)
	UpdateSpotAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSpotAvailabilityParams) (int64, error)
	InsertSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSpotParams) error
	DeleteAllSpots(ctx context.Context, db sqlc.DBTX) error
}

type SpotRepository struct {
	queries SpotQueries
	db      sqlc.DBTX
}

func NewSpotRepository(queries SpotQueries, db sqlc.DBTX) *SpotRepository {
	return &SpotRepository{
		queries: queries,
		db:      db,
	}
}

// FindNextAvailable returns the lowest-numbered free spot of the type, or nil.
func (r *SpotRepository) FindNextAvailable(ctx context.Context, t parking.ParkingType) (*parking.Spot, error) {
	row, err := r.queries.GetNextAvailableSpot(ctx, r.db, t.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find next available spot", err)
	}
	return converter.SpotFromInfra(row), nil
}

func (r *SpotRepository) GetByID(ctx context.Context, id int32) (*parking.Spot, error) {
	row, err := r.queries.GetSpot(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get spot", err)
	}
	return converter.SpotFromInfra(row), nil
}

func (r *SpotRepository) SetAvailability(ctx context.Context, id int32, available bool) (bool, error) {
	affected, err := r.queries.UpdateSpotAvailability(ctx, r.db, sqlc.UpdateSpotAvailabilityParams{
		ParkingNumber: id,
		Available:     available,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update spot availability", err)
	}
	return affected > 0, nil
}

func (r *SpotRepository) Insert(ctx context.Context, spot *parking.Spot) error {
	if err := r.queries.InsertSpot(ctx, r.db, converter.SpotToInsertParams(spot)); err != nil {
		return infra.WrapRepoErr("failed to insert spot", err)
	}
	return nil
}

func (r *SpotRepository) DeleteAll(ctx context.Context) error {
	if err := r.queries.DeleteAllSpots(ctx, r.db); err != nil {
		return infra.WrapRepoErr("failed to delete spots", err)
	}
	return nil
}

func (r *SpotRepository) ListAll(ctx context.Context) ([]*parking.Spot, error) {
	rows, err := r.queries.ListSpots(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}

	spots := make([]*parking.Spot, 0, len(rows))
	for _, row := range rows {
		spots = append(spots, converter.SpotFromInfra(row))
	}
	return spots, nil
}
