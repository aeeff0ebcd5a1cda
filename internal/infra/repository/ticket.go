package repository

import (
	"context"
	"log/slog"

	"parking-system/internal/domain/parking"
	"parking-system/internal/infra"
	"parking-system/internal/infra/repository/converter"
	sqlc "parking-system/internal/infra/sqlc/generated"
	"parking-system/internal/pkg/pgconv"
)

type TicketQueries interface {
	CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) (int64, error)
	GetLatestTicketByVehicle(ctx context.Context, db sqlc.DBTX, vehicleRegNumber string) (sqlc.GetLatestTicketByVehicleRow, error)
	UpdateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTicketParams) (int64, error)
	CountTicketsByVehicle(ctx context.Context, db sqlc.DBTX, vehicleRegNumber string) (int64, error)
	DeleteAllTickets(ctx context.Context, db sqlc.DBTX) error
}

type TicketRepository struct {
	queries TicketQueries
	db      sqlc.DBTX
}

func NewTicketRepository(queries TicketQueries, db sqlc.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

// Save inserts the ticket and assigns its id. Incomplete tickets and inserts
// refused by the open-ticket-per-spot index report false.
func (r *TicketRepository) Save(ctx context.Context, t *parking.Ticket) (bool, error) {
	if t == nil || t.Spot() == nil || t.VehicleRegNumber() == "" {
		slog.Warn("refusing to save incomplete ticket")
		return false, nil
	}

	id, err := r.queries.CreateTicket(ctx, r.db, converter.TicketToCreateParams(t))
	if err != nil {
		if pgconv.IsNoRows(err) {
			slog.Warn("ticket insert skipped by conflict",
				"spot_id", t.Spot().ID(),
				"vehicle", t.VehicleRegNumber())
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to save ticket", err)
	}

	if err := t.AssignID(id); err != nil {
		return false, infra.WrapRepoErr("failed to assign ticket id", err)
	}
	return true, nil
}

func (r *TicketRepository) FindByVehicle(ctx context.Context, reg string) (*parking.Ticket, error) {
	row, err := r.queries.GetLatestTicketByVehicle(ctx, r.db, reg)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find ticket by vehicle", err)
	}
	return converter.TicketFromLatestRow(row), nil
}

func (r *TicketRepository) Update(ctx context.Context, t *parking.Ticket) (bool, error) {
	if t == nil || t.ID() == 0 {
		return false, nil
	}

	affected, err := r.queries.UpdateTicket(ctx, r.db, converter.TicketToUpdateParams(t))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update ticket", err)
	}
	return affected > 0, nil
}

func (r *TicketRepository) CountByVehicle(ctx context.Context, reg string) (int, error) {
	count, err := r.queries.CountTicketsByVehicle(ctx, r.db, reg)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count tickets by vehicle", err)
	}
	return int(count), nil
}

func (r *TicketRepository) DeleteAll(ctx context.Context) error {
	if err := r.queries.DeleteAllTickets(ctx, r.db); err != nil {
		return infra.WrapRepoErr("failed to delete tickets", err)
	}
	return nil
}
