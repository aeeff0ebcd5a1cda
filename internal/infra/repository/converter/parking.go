package converter

import (
	"parking-system/internal/domain/parking"
	sqlc "parking-system/internal/infra/sqlc/generated"
	"parking-system/internal/pkg/pgconv"
)

func SpotFromInfra(row sqlc.Parking) *parking.Spot {
	return parking.ReconstructSpot(row.ParkingNumber, parking.ParkingType(row.Type), row.Available)
}

func SpotToInsertParams(spot *parking.Spot) sqlc.InsertSpotParams {
	return sqlc.InsertSpotParams{
		ParkingNumber: spot.ID(),
		Type:          spot.Type().String(),
		Available:     spot.IsAvailable(),
	}
}

func TicketFromLatestRow(row sqlc.GetLatestTicketByVehicleRow) *parking.Ticket {
	spot := parking.ReconstructSpot(row.ParkingNumber, parking.ParkingType(row.Type), row.Available)
	return parking.ReconstructTicket(
		row.ID,
		spot,
		row.VehicleRegNumber,
		pgconv.TimeFromPgtype(row.InTime),
		pgconv.TimePtrFromPgtype(row.OutTime),
		row.Price,
	)
}

func TicketToCreateParams(t *parking.Ticket) sqlc.CreateTicketParams {
	return sqlc.CreateTicketParams{
		ParkingNumber:    t.Spot().ID(),
		VehicleRegNumber: t.VehicleRegNumber(),
		Price:            t.Price(),
		InTime:           pgconv.TimeToPgtype(t.InTime()),
		OutTime:          pgconv.TimePtrToPgtype(t.OutTime()),
	}
}

func TicketToUpdateParams(t *parking.Ticket) sqlc.UpdateTicketParams {
	return sqlc.UpdateTicketParams{
		ID:      t.ID(),
		Price:   t.Price(),
		OutTime: pgconv.TimePtrToPgtype(t.OutTime()),
	}
}
