//go:build unit || e2e

package builder

import (
	"time"

	"parking-system/internal/domain/parking"
	reqdto "parking-system/internal/handler/dto/request"
	sqlc "parking-system/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type TicketBuilder struct {
	ID            int64
	SpotID        int32
	Type          parking.ParkingType
	SpotAvailable bool
	Registration  string
	InTime        time.Time
	OutTime       *time.Time
	Price         float64
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		SpotID:        1,
		Type:          parking.TypeCar,
		SpotAvailable: true,
		Registration:  "ABCDEF",
		InTime:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) WithID(id int64) *TicketBuilder {
	b.ID = id
	return b
}

func (b *TicketBuilder) WithSpotID(id int32) *TicketBuilder {
	b.SpotID = id
	return b
}

func (b *TicketBuilder) WithType(t parking.ParkingType) *TicketBuilder {
	b.Type = t
	return b
}

func (b *TicketBuilder) WithRegistration(reg string) *TicketBuilder {
	b.Registration = reg
	return b
}

func (b *TicketBuilder) WithInTime(t time.Time) *TicketBuilder {
	b.InTime = t
	return b
}

func (b *TicketBuilder) WithOutTime(t time.Time) *TicketBuilder {
	b.OutTime = &t
	return b
}

func (b *TicketBuilder) WithoutOutTime() *TicketBuilder {
	b.OutTime = nil
	return b
}

func (b *TicketBuilder) WithPrice(p float64) *TicketBuilder {
	b.Price = p
	return b
}

// Build methods
func (b *TicketBuilder) BuildSpot() *parking.Spot {
	return parking.ReconstructSpot(b.SpotID, b.Type, b.SpotAvailable)
}

func (b *TicketBuilder) BuildDomain() (*parking.Ticket, error) {
	reg, err := parking.NewRegistration(b.Registration)
	if err != nil {
		return nil, err
	}
	return parking.NewTicket(reg, b.BuildSpot(), b.InTime)
}

// BuildReconstructed skips validation, for tickets read back from storage.
func (b *TicketBuilder) BuildReconstructed() *parking.Ticket {
	return parking.ReconstructTicket(b.ID, b.BuildSpot(), b.Registration, b.InTime, b.OutTime, b.Price)
}

func (b *TicketBuilder) BuildInfra() sqlc.GetLatestTicketByVehicleRow {
	row := sqlc.GetLatestTicketByVehicleRow{
		ID:               b.ID,
		ParkingNumber:    b.SpotID,
		VehicleRegNumber: b.Registration,
		Price:            b.Price,
		InTime:           pgtype.Timestamptz{Time: b.InTime, Valid: !b.InTime.IsZero()},
		Type:             b.Type.String(),
		Available:        b.SpotAvailable,
	}
	if b.OutTime != nil {
		row.OutTime = pgtype.Timestamptz{Time: *b.OutTime, Valid: true}
	}
	return row
}

func (b *TicketBuilder) BuildEntryRequestDTO() reqdto.EntryRequest {
	return reqdto.EntryRequest{
		Registration: b.Registration,
		Type:         b.Type.String(),
	}
}

func (b *TicketBuilder) BuildExitRequestDTO() reqdto.ExitRequest {
	return reqdto.ExitRequest{
		Registration: b.Registration,
	}
}
